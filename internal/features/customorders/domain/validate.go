package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Wizard step identifiers.
const (
	StepServiceType     = 1
	StepReferenceImages = 2
	StepFabric          = 3
	StepMeasurements    = 4
	StepReview          = 5
)

const (
	// MaxReferenceImages is enforced at the request-binding layer, not by the
	// step validator, which only checks the minimum.
	MaxReferenceImages = 6

	minDesignIdeaRunes          = 50
	minReferenceImages          = 2
	minFabricDetailsRunes       = 20
	minFullNameRunes            = 2
	maxSpecialInstructionsRunes = 1000
)

// Field-level error messages. The client renders these inline, so the
// strings are part of the API contract.
const (
	MsgServiceTypeRequired     = "Please select a service type"
	MsgDesignIdeaTooShort      = "Design idea must be at least 50 characters for fully custom orders"
	MsgReferenceImagesTooFew   = "Please upload at least 2 reference images for brand article orders"
	MsgFabricSourceRequired    = "Please choose who provides the fabric"
	MsgFabricNotSelected       = "Please select a fabric from our collection"
	MsgFabricDetailsTooShort   = "Please describe your fabric in at least 20 characters"
	MsgStandardSizeRequired    = "Please select a standard size"
	MsgMeasurementsIncomplete  = "Required measurements: Shirt Length, Shoulder Width, Bust, Waist"
	MsgMeasurementLabelMissing = "Please enter a label to save your measurements"
	MsgFullNameTooShort        = "Full name must be at least 2 characters"
	MsgPhoneInvalid            = "Please enter a valid Pakistani mobile number"
	MsgEmailInvalid            = "Please enter a valid email address"
	MsgInstructionsTooLong     = "Special instructions must be 1000 characters or less"
)

// Pakistani mobile numbers: +92 followed by 10 digits, a leading 0 followed
// by 10 digits, or a bare 10-digit number.
var pakistaniMobileRx = regexp.MustCompile(`^(\+92\d{10}|0\d{10}|\d{10})$`)

var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("pk_mobile", func(fl validator.FieldLevel) bool {
		return pakistaniMobileRx.MatchString(fl.Field().String())
	})
	return v
}

// StepResult is the outcome of validating one wizard step (or the whole
// draft). Errors are keyed by the dotted path of the offending field.
type StepResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func newStepResult() StepResult {
	return StepResult{Valid: true, Errors: map[string]string{}}
}

func (r *StepResult) fail(field, message string) {
	r.Valid = false
	r.Errors[field] = message
}

// merge folds another step's outcome into this one.
func (r *StepResult) merge(other StepResult) {
	for field, msg := range other.Errors {
		r.fail(field, msg)
	}
}

// ValidateStep runs the validator for a single wizard step. Unknown steps
// validate clean so the wizard can navigate past steps it does not know.
// Validators are pure: no I/O, no mutation of the draft.
func ValidateStep(d *CustomOrderDraft, step int) StepResult {
	switch step {
	case StepServiceType:
		return validateServiceType(d)
	case StepReferenceImages:
		return validateReferenceImages(d)
	case StepFabric:
		return validateFabric(d)
	case StepMeasurements:
		return validateMeasurements(d)
	case StepReview:
		return validateReview(d)
	}
	return newStepResult()
}

// ValidateDraft re-validates every step against the same draft snapshot.
// Partial validity from wizard navigation is never trusted at submit time.
func ValidateDraft(d *CustomOrderDraft) StepResult {
	result := newStepResult()
	for step := StepServiceType; step <= StepReview; step++ {
		result.merge(ValidateStep(d, step))
	}
	return result
}

func validateServiceType(d *CustomOrderDraft) StepResult {
	result := newStepResult()

	switch d.ServiceType {
	case ServiceFullyCustom:
		if utf8.RuneCountInString(strings.TrimSpace(d.DesignIdea)) < minDesignIdeaRunes {
			result.fail("designIdea", MsgDesignIdeaTooShort)
		}
	case ServiceBrandArticle:
		// No design idea needed; the reference images carry the design.
	default:
		result.fail("serviceType", MsgServiceTypeRequired)
	}

	return result
}

func validateReferenceImages(d *CustomOrderDraft) StepResult {
	result := newStepResult()

	// Fully custom orders describe the design in text; images are optional.
	if d.ServiceType == ServiceFullyCustom {
		return result
	}

	if len(d.ReferenceImages) < minReferenceImages {
		result.fail("referenceImages", MsgReferenceImagesTooFew)
	}

	return result
}

func validateFabric(d *CustomOrderDraft) StepResult {
	result := newStepResult()

	switch d.FabricSource {
	case FabricLCProvides:
		if d.SelectedFabric == nil {
			result.fail("selectedFabric", MsgFabricNotSelected)
		}
	case FabricCustomerProvides:
		if utf8.RuneCountInString(strings.TrimSpace(d.FabricDetails)) < minFabricDetailsRunes {
			result.fail("fabricDetails", MsgFabricDetailsTooShort)
		}
	default:
		result.fail("fabricSource", MsgFabricSourceRequired)
	}

	return result
}

func validateMeasurements(d *CustomOrderDraft) StepResult {
	result := newStepResult()

	if d.UseStandardSize {
		if !d.StandardSize.IsValid() {
			result.fail("standardSize", MsgStandardSizeRequired)
		}
	} else if !d.Measurements.HasRequired() {
		// One aggregate message for the whole required set.
		result.fail("measurements", MsgMeasurementsIncomplete)
	}

	// Independent of sizing mode.
	if d.SaveMeasurements && strings.TrimSpace(d.MeasurementLabel) == "" {
		result.fail("measurementLabel", MsgMeasurementLabelMissing)
	}

	return result
}

func validateReview(d *CustomOrderDraft) StepResult {
	result := newStepResult()

	if utf8.RuneCountInString(strings.TrimSpace(d.CustomerInfo.FullName)) < minFullNameRunes {
		result.fail("customerInfo.fullName", MsgFullNameTooShort)
	}

	if err := fieldValidator.Var(d.CustomerInfo.Phone, "required,min=10,pk_mobile"); err != nil {
		result.fail("customerInfo.phone", MsgPhoneInvalid)
	}

	if d.CustomerInfo.Email != "" {
		if err := fieldValidator.Var(d.CustomerInfo.Email, "email"); err != nil {
			result.fail("customerInfo.email", MsgEmailInvalid)
		}
	}

	if utf8.RuneCountInString(d.SpecialInstructions) > maxSpecialInstructionsRunes {
		result.fail("specialInstructions", MsgInstructionsTooLong)
	}

	return result
}
