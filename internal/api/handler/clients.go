package handler

import (
	"net/http"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/clienting"
)

func ListClients(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func GetClient(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := service.GetClient(r.Context(), pathParam(r, "account_id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func CreateClient(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateClientRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		client, err := service.CreateClient(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, client)
	}
}

func UpdateClient(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateClientRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		client, err := service.UpdateClient(r.Context(), pathParam(r, "account_id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func DeleteClient(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteClient(r.Context(), pathParam(r, "account_id")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "client deleted"})
	}
}

// ListAccountsForClients lista as contas do token para o cadastro de clientes
func ListAccountsForClients(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccountsForClients(r.Context())
		if err != nil {
			writeReadError(w, r, err, []domain.DiscoveredAccount{})
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func ListPayments(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payments, err := service.ListPayments(r.Context(), pathParam(r, "account_id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, payments)
	}
}

func CreatePayment(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreatePaymentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		payment, err := service.CreatePayment(r.Context(), pathParam(r, "account_id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, payment)
	}
}

func ListAvatars(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		avatars, err := service.ListAvatars(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, avatars)
	}
}

func SaveAvatar(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAvatarRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		avatar, err := service.SaveAvatar(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, avatar)
	}
}

func DeleteAvatar(service clienting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intPathParam(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteAvatar(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
