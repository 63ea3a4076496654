package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/sse"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	GetInbox(w http.ResponseWriter, r *http.Request)
	GetUnreadCount(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
	NotifyTeam(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
	hub                 *sse.Hub
}

func NewNotificationHandler(notificationService notification.Service, hub *sse.Hub) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService, hub: hub}
}

// GetInbox implements NotificationHandler.
func (h *NotificationHandlerImpl) GetInbox(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	inbox, err := h.notificationService.GetInbox(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, inbox)
}

// GetUnreadCount implements NotificationHandler.
func (h *NotificationHandlerImpl) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	count, err := h.notificationService.GetUnreadCount(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, count)
}

// MarkAsRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// Stream implements NotificationHandler. It holds the connection open and
// pushes the acting employee's notifications as server-sent events.
func (h *NotificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	events, cleanup := h.hub.Subscribe(principal.EmployeeID)
	defer cleanup()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-events:
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
			flusher.Flush()
		}
	}
}

// MarkAllAsRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkAllAsRead(r.Context(), principal); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// NotifyTeam implements NotificationHandler. A manager broadcasts a message
// to every direct report.
func (h *NotificationHandlerImpl) NotifyTeam(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req struct {
		Message string `json:"message"`
		Urgency string `json:"urgency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.HandleError(w, validator.ValidationErrors{{
			Field:   "message",
			Message: "Message is required",
		}})
		return
	}

	err = h.notificationService.NotifyTeam(r.Context(), notification.CreateNotificationRequest{
		SenderID: &principal.EmployeeID,
		Type:     notification.TypeTeamBroadcast,
		Urgency:  notification.Urgency(req.Urgency),
		Message:  req.Message,
	}, principal.EmployeeID)
	if err != nil {
		slog.Error("NotifyTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Team notified", nil)
}
