package report

import (
	"fmt"
	"io"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// WriteText prints one "name user_id" line per invitee.
func WriteText(w io.Writer, invitees []models.Customer) error {
	for _, c := range invitees {
		if _, err := fmt.Fprintln(w, c.Name, c.UserID); err != nil {
			return fmt.Errorf("failed to write invitee %d: %w", c.UserID, err)
		}
	}
	return nil
}
