package domain

import "strings"

// PtaID identifies a stored pta. Its shape is backend-defined (an integer
// rendered as text for SQL backends, a hex ObjectID for Mongo, a UUID in memory).
type PtaID string

// PtaFields holds the free-text attributes of a pta. Every field is optional.
type PtaFields struct {
	ProcedureNumber    string `json:"procedure_number" bson:"procedure_number" csv:"procedure_number"`
	Taxpayer           string `json:"taxpayer" bson:"taxpayer" csv:"taxpayer"`
	Attorney           string `json:"attorney" bson:"attorney" csv:"attorney"`
	R3                 string `json:"r3" bson:"r3" csv:"r3"`
	OldExecution       string `json:"old_execution" bson:"old_execution" csv:"old_execution"`
	OldProcess         string `json:"old_process" bson:"old_process" csv:"old_process"`
	NewExecution       string `json:"new_execution" bson:"new_execution" csv:"new_execution"`
	AssessmentIssuedOn string `json:"assessment_issued_on" bson:"assessment_issued_on" csv:"assessment_issued_on"`
	Phase              string `json:"phase" bson:"phase" csv:"phase"`
	Location           string `json:"location" bson:"location" csv:"location"`
	Status             string `json:"status" bson:"status" csv:"status"`
}

// Pta is a stored tax-procedure record.
type Pta struct {
	ID PtaID `json:"id" csv:"id"`
	PtaFields `bson:",inline"`
}

// Field describes one attribute of PtaFields: its external key (form, JSON,
// BSON and CSV name), its SQL column and its display label.
type Field struct {
	Key    string
	Column string
	Label  string

	ref func(*PtaFields) *string
}

// Get returns the field's value in f.
func (fd Field) Get(f PtaFields) string {
	return *fd.ref(&f)
}

// Ptr returns a pointer to the field inside f, for use as a scan destination.
func (fd Field) Ptr(f *PtaFields) *string {
	return fd.ref(f)
}

// Set assigns v to the field in f.
func (fd Field) Set(f *PtaFields, v string) {
	*fd.ref(f) = v
}

// Fields is the ordered field catalogue. Column names match the legacy
// ptashelf MySQL schema.
var Fields = []Field{
	{Key: "procedure_number", Column: "pta_num", Label: "PTA number", ref: func(f *PtaFields) *string { return &f.ProcedureNumber }},
	{Key: "taxpayer", Column: "contribuinte", Label: "Taxpayer", ref: func(f *PtaFields) *string { return &f.Taxpayer }},
	{Key: "attorney", Column: "procurador", Label: "Attorney", ref: func(f *PtaFields) *string { return &f.Attorney }},
	{Key: "r3", Column: "r3", Label: "R3", ref: func(f *PtaFields) *string { return &f.R3 }},
	{Key: "old_execution", Column: "execucao_antiga", Label: "Old execution", ref: func(f *PtaFields) *string { return &f.OldExecution }},
	{Key: "old_process", Column: "proc_antigo", Label: "Old process", ref: func(f *PtaFields) *string { return &f.OldProcess }},
	{Key: "new_execution", Column: "execucao_nova", Label: "New execution", ref: func(f *PtaFields) *string { return &f.NewExecution }},
	{Key: "assessment_issued_on", Column: "data_emissao_ai", Label: "Assessment issued on", ref: func(f *PtaFields) *string { return &f.AssessmentIssuedOn }},
	{Key: "phase", Column: "fase", Label: "Phase", ref: func(f *PtaFields) *string { return &f.Phase }},
	{Key: "location", Column: "localizacao_pta", Label: "Location", ref: func(f *PtaFields) *string { return &f.Location }},
	{Key: "status", Column: "situacao", Label: "Status", ref: func(f *PtaFields) *string { return &f.Status }},
}

// FieldByKey looks up a field by its external key.
func FieldByKey(key string) (Field, bool) {
	key = strings.TrimSpace(key)
	for _, fd := range Fields {
		if fd.Key == key {
			return fd, true
		}
	}
	return Field{}, false
}

// PtaPatch is a partial update keyed by Field.Key. Keys absent from the patch
// are left untouched.
type PtaPatch map[string]string

// PatchFromMap keeps only known field keys from m.
func PatchFromMap(m map[string]string) PtaPatch {
	p := make(PtaPatch, len(m))
	for k, v := range m {
		if fd, ok := FieldByKey(k); ok {
			p[fd.Key] = v
		}
	}
	return p
}

// Apply writes the patched values into f.
func (p PtaPatch) Apply(f *PtaFields) {
	for _, fd := range Fields {
		if v, ok := p[fd.Key]; ok {
			fd.Set(f, v)
		}
	}
}

// FieldsFromMap builds PtaFields from external keys, ignoring unknown keys.
func FieldsFromMap(m map[string]string) PtaFields {
	var f PtaFields
	PatchFromMap(m).Apply(&f)
	return f
}
