package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTimeSlotTag(t *testing.T) {
	type form struct {
		Time string `validate:"time_slot"`
	}

	require.NoError(t, ValidateStruct(form{Time: "9:00"}))
	require.NoError(t, ValidateStruct(form{Time: "09:00"}), "zero padded form of a grid slot")
	require.NoError(t, ValidateStruct(form{Time: "16:30"}))

	require.Error(t, ValidateStruct(form{Time: "17:30"}), "outside the bookable grid")
	require.Error(t, ValidateStruct(form{Time: "8:30"}), "before opening")
	require.Error(t, ValidateStruct(form{Time: "9:15"}), "not on the half hour")
	require.Error(t, ValidateStruct(form{Time: "25:00"}))
	require.Error(t, ValidateStruct(form{Time: "mediodía"}))
}

func TestValidateSpecialtyTag(t *testing.T) {
	type form struct {
		Specialty string `validate:"specialty"`
	}

	require.NoError(t, ValidateStruct(form{Specialty: "Dermatology"}))
	require.Error(t, ValidateStruct(form{Specialty: "Neurology"}))
}
