package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carcare/internal/models"
)

func overdueMessage(n int) string {
	return fmt.Sprintf("You have %d overdue maintenance item(s)!", n)
}

func soonMessage(t models.MaintenanceType, days int) string {
	return fmt.Sprintf("%s due in %d days", t.DisplayName(), days)
}

func importedMessage(n int) string {
	return fmt.Sprintf("Successfully imported %d entries", n)
}

func importFailedMessage(err error) string {
	reason := err.Error()
	if errors.Is(err, ErrInvalidFormat) {
		reason = "Invalid data format"
	}
	return "Import failed: " + reason
}
