package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mv(value string) *MeasurementValue {
	return &MeasurementValue{Value: value, Unit: UnitInches}
}

func validBrandArticleDraft() *CustomOrderDraft {
	return &CustomOrderDraft{
		ServiceType:     ServiceBrandArticle,
		ReferenceImages: []string{"https://cdn.test/front.jpg", "https://cdn.test/back.jpg"},
		FabricSource:    FabricCustomerProvides,
		FabricDetails:   "Soft lawn fabric, pastel green, five meters available",
		UseStandardSize: true,
		StandardSize:    SizeM,
		CustomerInfo: CustomerInfo{
			FullName: "Ayesha Khan",
			Phone:    "+923001234567",
			Email:    "ayesha@example.com",
		},
	}
}

func validFullyCustomDraft() *CustomOrderDraft {
	return &CustomOrderDraft{
		ServiceType:  ServiceFullyCustom,
		DesignIdea:   "A flowing anarkali with a hand-embroidered neckline, bell sleeves, and a matching pastel dupatta.",
		FabricSource: FabricLCProvides,
		SelectedFabric: &Fabric{
			ID:    "fab-1",
			Name:  "Raw Silk",
			Price: 1500,
		},
		UseStandardSize: false,
		Measurements: Measurements{
			ShirtLength:   mv("38"),
			ShoulderWidth: mv("15.5"),
			Bust:          mv("36"),
			Waist:         mv("30"),
		},
		CustomerInfo: CustomerInfo{
			FullName: "Sana Ahmed",
			Phone:    "03001234567",
		},
	}
}

func TestValidateStep_ServiceType(t *testing.T) {
	t.Run("MissingServiceType", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.ServiceType = ""

		result := ValidateStep(d, StepServiceType)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgServiceTypeRequired, result.Errors["serviceType"])
	})

	t.Run("FullyCustomShortIdea", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.DesignIdea = "Too short"

		result := ValidateStep(d, StepServiceType)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgDesignIdeaTooShort, result.Errors["designIdea"])
	})

	t.Run("TrimmedLengthCounts", func(t *testing.T) {
		// 49 meaningful runes padded with whitespace: untrimmed length is
		// well over 50 but the validator trims first.
		d := validFullyCustomDraft()
		d.DesignIdea = strings.Repeat("a", 49) + strings.Repeat(" ", 30)

		result := ValidateStep(d, StepServiceType)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "designIdea")
	})

	t.Run("BrandArticleNeedsNoIdea", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.DesignIdea = ""

		result := ValidateStep(d, StepServiceType)
		assert.True(t, result.Valid)
	})

	t.Run("ValidFullyCustom", func(t *testing.T) {
		result := ValidateStep(validFullyCustomDraft(), StepServiceType)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})
}

func TestValidateStep_ReferenceImages(t *testing.T) {
	t.Run("BrandArticleTooFew", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.ReferenceImages = []string{"https://cdn.test/only.jpg"}

		result := ValidateStep(d, StepReferenceImages)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgReferenceImagesTooFew, result.Errors["referenceImages"])
	})

	t.Run("BrandArticleNone", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.ReferenceImages = nil

		result := ValidateStep(d, StepReferenceImages)
		assert.False(t, result.Valid)
	})

	t.Run("FullyCustomSkipsStep", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.ReferenceImages = nil

		result := ValidateStep(d, StepReferenceImages)
		assert.True(t, result.Valid)
	})

	t.Run("BrandArticleEnough", func(t *testing.T) {
		result := ValidateStep(validBrandArticleDraft(), StepReferenceImages)
		assert.True(t, result.Valid)
	})
}

func TestValidateStep_Fabric(t *testing.T) {
	t.Run("LCProvidesWithoutSelection", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.SelectedFabric = nil

		result := ValidateStep(d, StepFabric)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgFabricNotSelected, result.Errors["selectedFabric"])
	})

	t.Run("CustomerProvidesShortDetails", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.FabricDetails = "blue cotton"

		result := ValidateStep(d, StepFabric)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgFabricDetailsTooShort, result.Errors["fabricDetails"])
	})

	t.Run("CustomerProvidesWhitespacePadding", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.FabricDetails = "   short details   "

		result := ValidateStep(d, StepFabric)
		assert.False(t, result.Valid)
	})

	t.Run("MissingSource", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.FabricSource = ""

		result := ValidateStep(d, StepFabric)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgFabricSourceRequired, result.Errors["fabricSource"])
	})

	t.Run("ValidBothSources", func(t *testing.T) {
		assert.True(t, ValidateStep(validFullyCustomDraft(), StepFabric).Valid)
		assert.True(t, ValidateStep(validBrandArticleDraft(), StepFabric).Valid)
	})
}

func TestValidateStep_Measurements(t *testing.T) {
	t.Run("StandardSizeMissing", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.StandardSize = ""

		result := ValidateStep(d, StepMeasurements)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgStandardSizeRequired, result.Errors["standardSize"])
	})

	t.Run("StandardSizeInvalid", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.StandardSize = "XXL"

		result := ValidateStep(d, StepMeasurements)
		assert.False(t, result.Valid)
	})

	t.Run("CustomSizeIncomplete", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.Measurements.Waist = nil

		result := ValidateStep(d, StepMeasurements)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgMeasurementsIncomplete, result.Errors["measurements"])
	})

	t.Run("CustomSizeBlankValue", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.Measurements.Bust = mv("   ")

		result := ValidateStep(d, StepMeasurements)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "measurements")
	})

	t.Run("SaveWithoutLabel", func(t *testing.T) {
		// Label is required regardless of measurement completeness.
		d := validBrandArticleDraft()
		d.SaveMeasurements = true
		d.MeasurementLabel = "  "

		result := ValidateStep(d, StepMeasurements)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgMeasurementLabelMissing, result.Errors["measurementLabel"])
	})

	t.Run("SaveWithLabel", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.SaveMeasurements = true
		d.MeasurementLabel = "My formal wear"

		result := ValidateStep(d, StepMeasurements)
		assert.True(t, result.Valid)
	})

	t.Run("ValidCustomSize", func(t *testing.T) {
		result := ValidateStep(validFullyCustomDraft(), StepMeasurements)
		assert.True(t, result.Valid)
	})
}

func TestValidateStep_Review(t *testing.T) {
	t.Run("ShortFullName", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.CustomerInfo.FullName = "A"

		result := ValidateStep(d, StepReview)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgFullNameTooShort, result.Errors["customerInfo.fullName"])
	})

	t.Run("PhoneFormats", func(t *testing.T) {
		valid := []string{"+923001234567", "03001234567", "3001234567"}
		for _, phone := range valid {
			d := validBrandArticleDraft()
			d.CustomerInfo.Phone = phone
			assert.Truef(t, ValidateStep(d, StepReview).Valid, "phone %q should be valid", phone)
		}

		invalid := []string{"", "12345", "+9230012345", "abc1234567", "+14155551234"}
		for _, phone := range invalid {
			d := validBrandArticleDraft()
			d.CustomerInfo.Phone = phone
			result := ValidateStep(d, StepReview)
			require.Falsef(t, result.Valid, "phone %q should be invalid", phone)
			assert.Equal(t, MsgPhoneInvalid, result.Errors["customerInfo.phone"])
		}
	})

	t.Run("EmailOptionalButValid", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.CustomerInfo.Email = ""
		assert.True(t, ValidateStep(d, StepReview).Valid)

		d.CustomerInfo.Email = "not-an-email"
		result := ValidateStep(d, StepReview)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgEmailInvalid, result.Errors["customerInfo.email"])
	})

	t.Run("SpecialInstructionsTooLong", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.SpecialInstructions = strings.Repeat("x", 1001)

		result := ValidateStep(d, StepReview)
		assert.False(t, result.Valid)
		assert.Equal(t, MsgInstructionsTooLong, result.Errors["specialInstructions"])
	})

	t.Run("SpecialInstructionsAtLimit", func(t *testing.T) {
		d := validBrandArticleDraft()
		d.SpecialInstructions = strings.Repeat("x", 1000)

		assert.True(t, ValidateStep(d, StepReview).Valid)
	})
}

func TestValidateStep_UnknownStepIsValid(t *testing.T) {
	assert.True(t, ValidateStep(&CustomOrderDraft{}, 99).Valid)
	assert.True(t, ValidateStep(&CustomOrderDraft{}, 0).Valid)
}

func TestValidateDraft(t *testing.T) {
	t.Run("ValidDrafts", func(t *testing.T) {
		assert.True(t, ValidateDraft(validBrandArticleDraft()).Valid)
		assert.True(t, ValidateDraft(validFullyCustomDraft()).Valid)
	})

	t.Run("CollectsErrorsAcrossSteps", func(t *testing.T) {
		d := validFullyCustomDraft()
		d.DesignIdea = "short"
		d.SelectedFabric = nil
		d.CustomerInfo.Phone = "nope"

		result := ValidateDraft(d)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "designIdea")
		assert.Contains(t, result.Errors, "selectedFabric")
		assert.Contains(t, result.Errors, "customerInfo.phone")
	})

	t.Run("EmptyDraftFailsEverywhere", func(t *testing.T) {
		result := ValidateDraft(&CustomOrderDraft{})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "serviceType")
		assert.Contains(t, result.Errors, "fabricSource")
		assert.Contains(t, result.Errors, "measurements")
		assert.Contains(t, result.Errors, "customerInfo.fullName")
		assert.Contains(t, result.Errors, "customerInfo.phone")
	})
}
