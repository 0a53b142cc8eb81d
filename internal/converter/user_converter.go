package converter

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/dto"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
)

// UserToResponse converts a User entity plus its optional profile and doctor
// record to a UserResponse DTO
func UserToResponse(user *entity.User, profile *entity.Profile, doctor *entity.Doctor) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if profile != nil {
		resp.Role = string(profile.Role)
		resp.PhoneNumber = profile.PhoneNumber
	}

	if doctor != nil {
		d := *doctor
		d.User = *user
		resp.Doctor = DoctorToResponse(&d)
	}

	return resp
}
