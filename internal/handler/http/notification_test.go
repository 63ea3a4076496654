package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/jwt"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	notificationService "github.com/peopleworks/hrms-backend-go/internal/service/notification"
)

func truncateNotificationHandlerTables(t *testing.T, ctx context.Context) {
	handlerTestInit()
	tables := []string{"notification_recipients", "notifications", "employees"}
	for _, table := range tables {
		_, err := testHandlerDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func createNotificationTestEmployee(t *testing.T, ctx context.Context, fullName string, managerID *string) string {
	var id string
	err := testHandlerDB.QueryRow(ctx, `
		INSERT INTO employees (id, full_name, email, manager_id, is_active, profile_completion, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, true, 0, NOW(), NOW())
		RETURNING id
	`, fullName, fmt.Sprintf("notif-%d@example.com", time.Now().UnixNano()), managerID).Scan(&id)
	require.NoError(t, err)
	return id
}

func newNotificationTestHandler() NotificationHandler {
	handlerTestInit()
	svc := notificationService.NewNotificationService(
		testHandlerDB,
		postgresql.NewNotificationRepository(testHandlerDB),
		postgresql.NewEmployeeRepository(testHandlerDB),
		nil,
	)
	return NewNotificationHandler(svc, nil)
}

// authedRequest builds a request carrying verified access token claims,
// the way the router's Verifier middleware leaves them.
func authedRequest(t *testing.T, method, target string, body []byte, employeeID string, roles []string) *http.Request {
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	tokenString, _, err := jwtService.GenerateAccessToken(employeeID, "Test Person", "test@example.com", roles)
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestNotificationHandler_NotifyTeam_ReachesDirectReports(t *testing.T) {
	ctx := context.Background()
	truncateNotificationHandlerTables(t, ctx)
	handler := newNotificationTestHandler()

	managerID := createNotificationTestEmployee(t, ctx, "Manager", nil)
	reportID := createNotificationTestEmployee(t, ctx, "Report", &managerID)

	body, _ := json.Marshal(map[string]string{"message": "All hands at 10"})
	req := authedRequest(t, http.MethodPost, "/api/v1/notifications/team", body,
		managerID, []string{string(employee.RoleLineManager)})
	rec := httptest.NewRecorder()

	handler.NotifyTeam(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	svc := notificationService.NewNotificationService(
		testHandlerDB,
		postgresql.NewNotificationRepository(testHandlerDB),
		postgresql.NewEmployeeRepository(testHandlerDB),
		nil,
	)
	count, err := svc.GetUnreadCount(ctx, employee.Principal{EmployeeID: reportID})
	require.NoError(t, err)
	assert.Equal(t, 1, count.UnreadCount)

	// The sender is not a recipient of their own broadcast.
	count, err = svc.GetUnreadCount(ctx, employee.Principal{EmployeeID: managerID})
	require.NoError(t, err)
	assert.Equal(t, 0, count.UnreadCount)
}

func TestNotificationHandler_NotifyTeam_EmptyMessageRejected(t *testing.T) {
	ctx := context.Background()
	truncateNotificationHandlerTables(t, ctx)
	handler := newNotificationTestHandler()

	managerID := createNotificationTestEmployee(t, ctx, "Manager", nil)

	body, _ := json.Marshal(map[string]string{"message": "   "})
	req := authedRequest(t, http.MethodPost, "/api/v1/notifications/team", body,
		managerID, []string{string(employee.RoleLineManager)})
	rec := httptest.NewRecorder()

	handler.NotifyTeam(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestNotificationHandler_NotifyTeam_RequiresManagerRole(t *testing.T) {
	ctx := context.Background()
	truncateNotificationHandlerTables(t, ctx)
	handler := newNotificationTestHandler()

	employeeID := createNotificationTestEmployee(t, ctx, "Plain Employee", nil)

	guarded := middleware.RequireManager(http.HandlerFunc(handler.NotifyTeam))

	body, _ := json.Marshal(map[string]string{"message": "Not allowed"})
	req := authedRequest(t, http.MethodPost, "/api/v1/notifications/team", body,
		employeeID, []string{string(employee.RoleEmployee)})
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
