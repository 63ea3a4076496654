package mission

import (
	"strings"
	"testing"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignMissionRequest_Validate(t *testing.T) {
	valid := AssignMissionRequest{
		EmployeeID:  "emp-1",
		Destination: "Berlin office",
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-10",
	}
	assert.NoError(t, valid.Validate())

	missing := AssignMissionRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-10",
	}
	var errs validator.ValidationErrors
	require.ErrorAs(t, missing.Validate(), &errs)
	assert.Equal(t, "destination", errs[0].Field)

	tooLong := valid
	tooLong.Destination = strings.Repeat("x", 256)
	require.ErrorAs(t, tooLong.Validate(), &errs)
	assert.Equal(t, "destination", errs[0].Field)
}
