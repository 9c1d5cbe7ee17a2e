package handler

import (
	"net/http"

	"github.com/vfg2006/customer360-api/internal/usecases/chatting"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
)

type SendMessageRequest struct {
	Text string `json:"text"`
}

type InputRequest struct {
	Input  string `json:"input"`
	Cursor int    `json:"cursor"`
}

func writeChatError(w http.ResponseWriter, r *http.Request, err error, message string) {
	writeError(w, r, err, apiErrors.ErrInternalServer, message)
}

func CreateChatSession(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Create(r.Context())
		if err != nil {
			writeChatError(w, r, err, "could not start chat session")
			return
		}

		writeJSON(w, r, http.StatusCreated, view)
	}
}

func GetChatSession(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Get(param(r, "id"))
		if err != nil {
			writeChatError(w, r, err, "could not load chat session")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func ResetChatSession(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Reset(param(r, "id"))
		if err != nil {
			writeChatError(w, r, err, "could not reset chat session")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func DeleteChatSession(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(param(r, "id")); err != nil {
			writeChatError(w, r, err, "could not delete chat session")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SendChatMessage blocks until the assistant has answered. A failed answer
// is still a 200 carrying the apology message.
func SendChatMessage(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendMessageRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		view, err := service.Send(r.Context(), param(r, "id"), req.Text)
		if err != nil {
			writeChatError(w, r, err, "could not send message")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

// SetChatInput stores the text box contents and returns the mention suggestions.
func SetChatInput(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InputRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		view, err := service.SetInput(param(r, "id"), req.Input, req.Cursor)
		if err != nil {
			writeChatError(w, r, err, "could not update input")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func ChatKeyDown(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var key chatting.Key
		if err := decodeBody(r, &key); err != nil || key.Key == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "key is required", nil)
			return
		}

		result, err := service.KeyDown(r.Context(), param(r, "id"), key)
		if err != nil {
			writeChatError(w, r, err, "could not apply key")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
