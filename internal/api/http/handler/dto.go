package handler

import (
	"encoding/json"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

type userResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Profession *string `json:"profession"`
	Company    *string `json:"company"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type listUsersResponse struct {
	Success bool           `json:"success"`
	Data    []userResponse `json:"data"`
	Count   int            `json:"count"`
	Message string         `json:"message"`
}

type userEnvelope struct {
	Success bool         `json:"success"`
	Data    userResponse `json:"data"`
	Message string       `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type createUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Profession *string `json:"profession"`
	Company    *string `json:"company"`
}

type updateUserRequest struct {
	Name       *string       `json:"name"`
	Email      *string       `json:"email"`
	Profession clearableText `json:"profession"`
	Company    clearableText `json:"company"`
}

// clearableText is an optional body field that tells an explicit null
// apart from an omitted key.
type clearableText struct {
	Set   bool
	Value *string
}

func (t *clearableText) UnmarshalJSON(data []byte) error {
	t.Set = true
	if string(data) == "null" {
		t.Value = nil
		return nil
	}
	return json.Unmarshal(data, &t.Value)
}

// update returns nil when the key was omitted and an empty string when it
// was null, which clears the column.
func (t clearableText) update() *string {
	if !t.Set {
		return nil
	}
	if t.Value == nil {
		empty := ""
		return &empty
	}
	return t.Value
}

func convertUserToResponse(user model.User) userResponse {
	return userResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Profession: user.Profession,
		Company:    user.Company,
		CreatedAt:  user.CreatedAt.UTC().Format(model.TimestampLayout),
		UpdatedAt:  user.UpdatedAt.UTC().Format(model.TimestampLayout),
	}
}

func convertUsersToResponse(users []model.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, convertUserToResponse(user))
	}
	return out
}
