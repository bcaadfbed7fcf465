package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail     = "email"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"

	FieldNGC           = "ngc"
	FieldName          = "name"
	FieldType          = "type"
	FieldConstellation = "constellation"
	FieldRA            = "ra"
	FieldDec           = "dec"
	FieldMagnitude     = "magnitude"
	FieldCollection    = "collection"
)

// RequestValidator implements [Validator] for every request model of the
// account and catalog services. Both value and pointer forms are accepted.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj and returns
// ErrUnsupportedType for anything that is not a known request model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.EditUserRequest:
		return v.validateEditUserRequest(ctx, value, fields...)
	case *models.EditUserRequest:
		return v.validateEditUserRequest(ctx, *value, fields...)

	case models.CreateObjectRequest:
		return v.validateCreateObjectRequest(ctx, value, fields...)
	case *models.CreateObjectRequest:
		return v.validateCreateObjectRequest(ctx, *value, fields...)

	case models.ObjectKey:
		return v.validateObjectKey(ctx, value, fields...)
	case *models.ObjectKey:
		return v.validateObjectKey(ctx, *value, fields...)

	case models.FavouriteRequest:
		return v.validateFavouriteRequest(ctx, value, fields...)
	case *models.FavouriteRequest:
		return v.validateFavouriteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest requires a password only for local accounts.
func (v *RequestValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldFirstName, FieldLastName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldFirstName:
			if request.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if request.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldPassword:
			if !request.IsGoogle && request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials checks only the account key. Whether the proof is
// acceptable is decided by authentication, not validation.
func (v *RequestValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if credentials.Email == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEditUserRequest(ctx context.Context, request models.EditUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.validateCredentials(ctx, request.Credentials, FieldEmail); err != nil {
				return err
			}
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateObjectRequest distinguishes absent numeric fields from
// present zeroes: ra, dec and magnitude equal to zero are valid. Present
// numbers must fit [models.Decimal.InStoreRange].
func (v *RequestValidator) validateCreateObjectRequest(ctx context.Context, request models.CreateObjectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNGC, FieldName, FieldType, FieldConstellation, FieldRA, FieldDec, FieldMagnitude, FieldCollection}
	}

	for _, f := range fields {
		switch f {
		case FieldNGC:
			if request.NGC == nil || *request.NGC <= 0 {
				return ErrInvalidNGC
			}
		case FieldName:
			if request.Name == "" {
				return ErrEmptyName
			}
		case FieldType:
			if request.Type == "" {
				return ErrEmptyType
			}
		case FieldConstellation:
			if request.Constellation == "" {
				return ErrEmptyConstellation
			}
		case FieldRA:
			if request.RA == nil {
				return ErrMissingRA
			}
			if !request.RA.InStoreRange() {
				return fmt.Errorf("%w: %s", ErrNumberOutOfRange, f)
			}
		case FieldDec:
			if request.Dec == nil {
				return ErrMissingDec
			}
			if !request.Dec.InStoreRange() {
				return fmt.Errorf("%w: %s", ErrNumberOutOfRange, f)
			}
		case FieldMagnitude:
			if request.Magnitude == nil {
				return ErrMissingMagnitude
			}
			if !request.Magnitude.InStoreRange() {
				return fmt.Errorf("%w: %s", ErrNumberOutOfRange, f)
			}
		case FieldCollection:
			if request.Collection == "" {
				return ErrEmptyCollection
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateObjectKey(ctx context.Context, key models.ObjectKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNGC}
	}

	for _, f := range fields {
		switch f {
		case FieldNGC:
			if key.NGC <= 0 {
				return ErrInvalidNGC
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateFavouriteRequest(ctx context.Context, request models.FavouriteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldNGC}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldNGC:
			if request.NGC <= 0 {
				return ErrInvalidNGC
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
