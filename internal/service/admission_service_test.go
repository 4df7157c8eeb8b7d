package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

func TestAdmissionService_CreateValidates(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdmissionService(backend)
	ctx := context.Background()

	tests := []struct {
		name string
		in   *models.AdmissionInput
		want error
	}{
		{"nil input", nil, ErrInvalidAdmission},
		{"blank name", &models.AdmissionInput{StudentName: "  ", SchoolID: 1, ClassID: 1}, ErrInvalidAdmission},
		{"missing school", &models.AdmissionInput{StudentName: "Asha", ClassID: 1}, ErrInvalidAdmission},
		{"missing class", &models.AdmissionInput{StudentName: "Asha", SchoolID: 1}, ErrInvalidAdmission},
		{"plain url image", &models.AdmissionInput{StudentName: "Asha", SchoolID: 1, ClassID: 1, Image: "https://x/y.png"}, ErrInvalidImage},
		{"bad base64", &models.AdmissionInput{StudentName: "Asha", SchoolID: 1, ClassID: 1, Image: "data:image/png;base64,@@@"}, ErrInvalidImage},
		{"pdf data url", &models.AdmissionInput{StudentName: "Asha", SchoolID: 1, ClassID: 1, Image: "data:application/pdf;base64,AAAA"}, ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Create(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, backend.count("admissionCreate"))
}

func TestAdmissionService_CreateWithPhoto(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdmissionService(backend)

	image := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	msg, id, err := svc.Create(context.Background(), &models.AdmissionInput{
		StudentName: "Asha",
		SchoolID:    1,
		ClassID:     2,
		Image:       image,
	})
	require.NoError(t, err)
	assert.Equal(t, "Admission created", msg)
	assert.Equal(t, 9, id)
	require.Len(t, backend.admissions, 1)
	assert.Equal(t, image, backend.admissions[0].Image)
}

func TestAdmissionService_Proxies(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdmissionService(backend)
	ctx := context.Background()

	list, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, list.Rows)

	a, err := svc.View(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, a.ID)

	_, err = svc.Update(ctx, 3, &models.AdmissionInput{StudentName: "Asha"})
	assert.ErrorIs(t, err, ErrInvalidAdmission)
	msg, err := svc.Update(ctx, 3, &models.AdmissionInput{StudentName: "Asha", SchoolID: 1, ClassID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Admission updated", msg)

	msg, err = svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Admission deleted", msg)
}
