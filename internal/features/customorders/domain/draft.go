package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ServiceType selects the kind of tailoring service requested.
type ServiceType string

const (
	// ServiceFullyCustom is an outfit made from the customer's own design idea.
	ServiceFullyCustom ServiceType = "fully-custom"
	// ServiceBrandArticle replicates an existing branded article from reference images.
	ServiceBrandArticle ServiceType = "brand-article"
)

// FabricSource selects who supplies the fabric for the order.
type FabricSource string

const (
	// FabricLCProvides means the fabric is picked from the in-house collection.
	FabricLCProvides FabricSource = "lc-provides"
	// FabricCustomerProvides means the customer ships or drops off their own fabric.
	FabricCustomerProvides FabricSource = "customer-provides"
)

// StandardSize is a ready-made size chart entry.
type StandardSize string

const (
	SizeXS StandardSize = "XS"
	SizeS  StandardSize = "S"
	SizeM  StandardSize = "M"
	SizeL  StandardSize = "L"
	SizeXL StandardSize = "XL"
)

// IsValid reports whether the size is one of the chart entries.
func (s StandardSize) IsValid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}

// Fabric is the catalog entry snapshotted into a draft when the
// fabric comes from the in-house collection.
type Fabric struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"` // PKR per outfit
}

// MeasurementUnit tags a measurement value with its unit.
type MeasurementUnit string

const (
	UnitInches      MeasurementUnit = "in"
	UnitCentimeters MeasurementUnit = "cm"
)

// MeasurementValue is a single named measurement. The wizard historically
// submitted bare numbers or strings, so the value decodes from either a
// scalar or a {value, unit} object; unit defaults to inches.
type MeasurementValue struct {
	Value string          `json:"value"`
	Unit  MeasurementUnit `json:"unit"`
}

// UnmarshalJSON accepts a JSON number, a JSON string, or a {value, unit} object.
func (m *MeasurementValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Value json.RawMessage `json:"value"`
			Unit  MeasurementUnit `json:"unit"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		m.Unit = obj.Unit
		if m.Unit == "" {
			m.Unit = UnitInches
		}
		if len(obj.Value) == 0 {
			m.Value = ""
			return nil
		}
		return m.decodeScalar(obj.Value)
	}

	m.Unit = UnitInches
	return m.decodeScalar(data)
}

func (m *MeasurementValue) decodeScalar(data []byte) error {
	if string(data) == "null" {
		m.Value = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &m.Value)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	m.Value = n.String()
	return nil
}

// IsEmpty reports whether the measurement was omitted or left blank.
func (m *MeasurementValue) IsEmpty() bool {
	return m == nil || strings.TrimSpace(m.Value) == ""
}

// Measurements is the fixed set of named measurement fields the atelier
// works with. Only the first four are required for custom-sized orders.
type Measurements struct {
	ShirtLength   *MeasurementValue `json:"shirtLength,omitempty"`
	ShoulderWidth *MeasurementValue `json:"shoulderWidth,omitempty"`
	Bust          *MeasurementValue `json:"bust,omitempty"`
	Waist         *MeasurementValue `json:"waist,omitempty"`
	Hips          *MeasurementValue `json:"hips,omitempty"`
	SleeveLength  *MeasurementValue `json:"sleeveLength,omitempty"`
	Neck          *MeasurementValue `json:"neck,omitempty"`
	TrouserLength *MeasurementValue `json:"trouserLength,omitempty"`
}

// HasRequired reports whether all measurements needed to cut a custom-sized
// outfit are present and non-empty.
func (m Measurements) HasRequired() bool {
	return !m.ShirtLength.IsEmpty() &&
		!m.ShoulderWidth.IsEmpty() &&
		!m.Bust.IsEmpty() &&
		!m.Waist.IsEmpty()
}

// CustomerInfo is the contact block collected on the review step.
type CustomerInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// CustomOrderDraft is the in-progress wizard state. A draft is mutated
// step by step on the client and only becomes an Order once every step
// validator passes against the same snapshot.
type CustomOrderDraft struct {
	ServiceType         ServiceType  `json:"serviceType"`
	DesignIdea          string       `json:"designIdea,omitempty"`
	ReferenceImages     []string     `json:"referenceImages,omitempty"`
	FabricSource        FabricSource `json:"fabricSource"`
	SelectedFabric      *Fabric      `json:"selectedFabric,omitempty"`
	FabricDetails       string       `json:"fabricDetails,omitempty"`
	UseStandardSize     bool         `json:"useStandardSize"`
	StandardSize        StandardSize `json:"standardSize,omitempty"`
	Measurements        Measurements `json:"measurements"`
	SaveMeasurements    bool         `json:"saveMeasurements"`
	MeasurementLabel    string       `json:"measurementLabel,omitempty"`
	SpecialInstructions string       `json:"specialInstructions,omitempty"`
	RushOrder           bool         `json:"rushOrder"`
	CustomerInfo        CustomerInfo `json:"customerInfo"`
}
