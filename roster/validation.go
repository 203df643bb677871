package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyStaffNo is returned when a staff number is empty.
	ErrEmptyStaffNo = errors.New("staff number cannot be empty")

	// ErrEmptyStaffName is returned when a staff name is empty.
	ErrEmptyStaffName = errors.New("staff name cannot be empty")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDataset is returned when an imported document does not
	// contain both a staff and a tasks collection.
	ErrInvalidDataset = errors.New("dataset document must contain staff and tasks collections")
)

// ValidateStaffNo checks if the staff number is valid.
func ValidateStaffNo(no string) error {
	if strings.TrimSpace(no) == "" {
		return ErrEmptyStaffNo
	}
	return nil
}

// ValidateStaffName checks if the staff name is valid.
func ValidateStaffName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyStaffName
	}
	return nil
}

// ValidateTitle checks if the task title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateDate checks if the value is a YYYY-MM-DD date.
func ValidateDate(value string) error {
	if _, err := time.Parse(DateFormat, value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return nil
}

func normalizeStatusInput(status Status) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return normalized, nil
}
