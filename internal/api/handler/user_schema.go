package handler

import (
	"time"

	"github.com/99minutos/admin-users/internal/core/ports"
)

// userSummaryResponse is the public shape of a user. The field set is fixed;
// secrets have no place here.
type userSummaryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Company       string    `json:"company"`
	TaxID         string    `json:"taxId"`
	CreatedAt     time.Time `json:"createdAt"`
	EmailVerified bool      `json:"emailVerified"`
}

type listUsersResponse struct {
	Users []userSummaryResponse `json:"users"`
	Total int                   `json:"total"`
}

type capabilitiesResponse struct {
	Admin  bool   `json:"admin"`
	Reason string `json:"reason,omitempty"`
}

func toListUsersResponse(items []ports.UserSummary) listUsersResponse {
	users := make([]userSummaryResponse, len(items))
	for i, s := range items {
		users[i] = userSummaryResponse{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			Role:          s.Role,
			Company:       s.Company,
			TaxID:         s.TaxID,
			CreatedAt:     s.CreatedAt.UTC(),
			EmailVerified: s.EmailVerified,
		}
	}
	return listUsersResponse{Users: users, Total: len(users)}
}

// messageResponse documents the error envelope rendered by the API error handler.
type messageResponse struct {
	Message string `json:"message"`
}
