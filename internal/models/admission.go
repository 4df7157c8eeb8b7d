package models

// Admission is a student enrollment record.
type Admission struct {
	ID          int    `json:"id"`
	StudentName string `json:"student_name"`
	SchoolID    int    `json:"school_id"`
	ClassID     int    `json:"class_id"`
	CLID        int    `json:"cl_id,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
	ParentName  string `json:"parent_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// AdmissionInput is the create/update payload. Image, when set, is a base64
// data URL embedded in the JSON body.
type AdmissionInput struct {
	StudentName string `json:"student_name" binding:"required"`
	SchoolID    int    `json:"school_id" binding:"required,gt=0"`
	ClassID     int    `json:"class_id" binding:"required,gt=0"`
	CLID        int    `json:"cl_id,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
	ParentName  string `json:"parent_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	Address     string `json:"address,omitempty"`
	Image       string `json:"image,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// AdmissionListRequest is the body of POST /Admission/list.
type AdmissionListRequest struct {
	SchoolID int    `json:"school_id,omitempty"`
	ClassID  int    `json:"class_id,omitempty"`
	Search   string `json:"search,omitempty"`
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}
