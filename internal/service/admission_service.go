package service

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

var dataURLPattern = regexp.MustCompile(`^data:image/(png|jpe?g|webp|gif);base64,`)

// AdmissionService proxies student admissions to the backend.
type AdmissionService struct {
	backend Backend
}

// NewAdmissionService constructs an AdmissionService.
func NewAdmissionService(backend Backend) *AdmissionService {
	return &AdmissionService{backend: backend}
}

// Create validates in and creates the admission. It returns the backend
// message and the new record id when the backend reports one.
func (s *AdmissionService) Create(ctx context.Context, in *models.AdmissionInput) (string, int, error) {
	if err := validateAdmission(in); err != nil {
		return "", 0, err
	}
	env, err := s.backend.CreateAdmission(ctx, in)
	if err != nil {
		return "", 0, err
	}
	log.Info().Int("school_id", in.SchoolID).Int("class_id", in.ClassID).Msg("Admission created")
	return env.Message, env.ResourceID(), nil
}

// List returns admissions matching filter.
func (s *AdmissionService) List(ctx context.Context, filter *models.AdmissionListRequest) (*models.ListResponse[models.Admission], error) {
	if filter == nil {
		filter = &models.AdmissionListRequest{}
	}
	resp, err := s.backend.ListAdmissions(ctx, filter)
	if err != nil {
		return &models.ListResponse[models.Admission]{Rows: []models.Admission{}}, err
	}
	if resp.Rows == nil {
		resp.Rows = []models.Admission{}
	}
	return resp, nil
}

// View returns one admission.
func (s *AdmissionService) View(ctx context.Context, id int) (*models.Admission, error) {
	return s.backend.ViewAdmission(ctx, id)
}

// Update validates in and replaces admission id.
func (s *AdmissionService) Update(ctx context.Context, id int, in *models.AdmissionInput) (string, error) {
	if err := validateAdmission(in); err != nil {
		return "", err
	}
	env, err := s.backend.UpdateAdmission(ctx, id, in)
	if err != nil {
		return "", err
	}
	log.Info().Int("admission_id", id).Msg("Admission updated")
	return env.Message, nil
}

// Delete removes admission id.
func (s *AdmissionService) Delete(ctx context.Context, id int) (string, error) {
	env, err := s.backend.DeleteAdmission(ctx, id)
	if err != nil {
		return "", err
	}
	log.Info().Int("admission_id", id).Msg("Admission deleted")
	return env.Message, nil
}

func validateAdmission(in *models.AdmissionInput) error {
	if in == nil || strings.TrimSpace(in.StudentName) == "" || in.SchoolID <= 0 || in.ClassID <= 0 {
		return ErrInvalidAdmission
	}
	if in.Image != "" {
		return validateImage(in.Image)
	}
	return nil
}

// validateImage accepts a base64 image data URL with a decodable payload.
func validateImage(image string) error {
	loc := dataURLPattern.FindStringIndex(image)
	if loc == nil {
		return ErrInvalidImage
	}
	payload := image[loc[1]:]
	if payload == "" {
		return ErrInvalidImage
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return ErrInvalidImage
	}
	return nil
}
