package clienting

import "errors"

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientExists     = errors.New("client with this account_id already exists")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrAvatarNotFound   = errors.New("avatar setting not found")
	ErrInvalidPaidAt    = errors.New("paid_at must be YYYY-MM-DD")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) || errors.Is(err, ErrAvatarNotFound)
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrClientExists) || errors.Is(err, ErrNoFieldsToUpdate) || errors.Is(err, ErrInvalidPaidAt)
}
