package utils

import (
	"citamed-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("specialty", validateSpecialty)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("time_slot", validateTimeSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSpecialty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	_, known := constvars.SpecialtyCosts[value]
	return known
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := ParseBareDate(fl.Field().String())
	return err == nil
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	slot, err := CanonicalTimeSlot(fl.Field().String())
	if err != nil {
		return false
	}
	for _, each := range GenerateTimeSlots() {
		if each == slot {
			return true
		}
	}
	return false
}
