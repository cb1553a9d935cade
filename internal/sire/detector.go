package sire

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/sire-cli/internal/dataset"
)

// Canonical field names the detector tries to bind to source columns.
const (
	FieldTipoDocumento   = "tipo_documento"
	FieldNumeroDocumento = "numero_documento"
	FieldNombres         = "nombres"
	FieldPrimerApellido  = "primer_apellido"
	FieldNombreCompleto  = "nombre_completo"
	FieldNacionalidad    = "nacionalidad"
	FieldFechaNacimiento = "fecha_nacimiento"
	FieldFechaCheckin    = "fecha_checkin"
	FieldFechaCheckout   = "fecha_checkout"
	FieldProcedencia     = "procedencia"
	FieldDestino         = "destino"
)

// ColumnMatch binds a canonical field to a source column.
type ColumnMatch struct {
	Column     string
	Confidence Confidence
}

// ColumnMap is a partial mapping from canonical field to source column. It is
// injective: no source column backs more than one field.
type ColumnMap map[string]ColumnMatch

// fieldSpec describes how one canonical field is recognized.
type fieldSpec struct {
	field           string
	variants        []string
	contentPatterns []*regexp.Regexp
	excludeKeywords []string
	priority        int // lower resolves first; 0 means unranked (resolved last)
}

// fieldSpecs drive detection. tipo_documento must outrank numero_documento:
// a column named "Tipo de Documento" would otherwise be claimed by the
// number-oriented variants first.
var fieldSpecs = []fieldSpec{
	{
		field: FieldTipoDocumento,
		variants: []string{
			"tipo de documento", "document type", "tipo documento",
			"doc type", "id type", "tipo de id", "tipo id",
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(pasaporte|passport|cedula|dni|visa|ppt)`),
		},
		priority: 1,
	},
	{
		field: FieldNumeroDocumento,
		variants: []string{
			"document number", "numero documento", "número de documento",
			"numero de identificacion", "número de identificación",
			"passport number", "passport no", "id number",
			"doc number", "document no", "numero del documento",
			"número del documento", "no. documento", "nro documento",
			"n documento", "num documento", "numero id", "no identificacion",
			"número identificación",
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^[A-Z]{1,2}\d{6,9}$`), // typical passport
			regexp.MustCompile(`^\d{8,12}$`),
			regexp.MustCompile(`(?i)^[A-Z0-9]{6,12}$`),
		},
		excludeKeywords: []string{"tipo"},
		priority:        2,
	},
	{
		field: FieldNombres,
		variants: []string{
			"name", "first name", "nombres", "given name", "firstname",
			"given names", "nombre", "primer nombre",
		},
	},
	{
		field: FieldPrimerApellido,
		variants: []string{
			"surname", "last name", "apellido", "primer apellido",
			"family name", "lastname", "apellidos",
		},
	},
	{
		field: FieldNombreCompleto,
		variants: []string{
			"guest name", "nombre completo", "full name", "guest",
			"huesped", "nombre y apellido", "huésped", "cliente",
		},
	},
	{
		field: FieldNacionalidad,
		variants: []string{
			"country", "nationality", "nacionalidad", "pais", "país",
			"citizen", "citizenship", "nation",
		},
	},
	{
		field: FieldFechaNacimiento,
		variants: []string{
			"birthday", "birth date", "fecha nacimiento", "date of birth",
			"birthdate", "dob", "nacimiento", "born", "cumpleaños",
			"fecha de nacimiento", "f. nacimiento",
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
			regexp.MustCompile(`^\d{4}[/-]\d{1,2}[/-]\d{1,2}`),
		},
	},
	{
		field: FieldFechaCheckin,
		variants: []string{
			"arrival date", "arrival", "check-in", "checkin", "check in",
			"llegada", "entrada", "fecha entrada", "fecha llegada",
			"fecha de llegada", "ingreso",
		},
	},
	{
		field: FieldFechaCheckout,
		variants: []string{
			"departure date", "departure", "check-out", "checkout",
			"check out", "salida", "fecha salida", "fecha checkout",
			"fecha de salida", "egreso",
		},
	},
	{
		field: FieldProcedencia,
		variants: []string{
			"pais de procedencia", "country of origin", "origin country",
			"procedencia", "from", "origen", "viene de",
		},
	},
	{
		field: FieldDestino,
		variants: []string{
			"pais de destino", "destination country", "destino",
			"destination", "to", "va a", "hacia",
		},
	},
}

// criticalFields get a content-sniffing third pass when name matching fails.
var criticalFields = []string{FieldNumeroDocumento, FieldFechaNacimiento, FieldNacionalidad}

const (
	strictNameThreshold  = 0.8
	relaxedNameThreshold = 0.4
	contentSampleSize    = 10
	contentMatchRatio    = 0.5
)

// DetectColumns recovers the canonical-field-to-column mapping for a dataset.
// Three passes run over fields in priority order; a claimed-columns set
// guarantees no column is assigned twice.
func DetectColumns(ds *dataset.Dataset) ColumnMap {
	detected := make(ColumnMap)
	claimed := make(map[string]bool)
	specs := specsByPriority()

	// Pass 1: strict name match.
	for _, spec := range specs {
		for _, col := range ds.Columns {
			if claimed[col] || excludedColumn(col, spec) {
				continue
			}
			if _, score := fuzzyMatch(col, spec.variants, relaxedNameThreshold); score >= strictNameThreshold {
				detected[spec.field] = ColumnMatch{Column: col, Confidence: ConfidenceHigh}
				claimed[col] = true
				break
			}
		}
	}

	// Pass 2: relaxed name match for unclaimed fields.
	for _, spec := range specs {
		if _, ok := detected[spec.field]; ok {
			continue
		}
		for _, col := range ds.Columns {
			if claimed[col] || excludedColumn(col, spec) {
				continue
			}
			if matched, _ := fuzzyMatch(col, spec.variants, relaxedNameThreshold); matched {
				detected[spec.field] = ColumnMatch{Column: col, Confidence: ConfidenceMedium}
				claimed[col] = true
				break
			}
		}
	}

	// Pass 3: content sniffing, critical fields only.
	for _, field := range criticalFields {
		if _, ok := detected[field]; ok {
			continue
		}
		spec, ok := specByField(field)
		if !ok || len(spec.contentPatterns) == 0 {
			continue
		}
		for _, col := range ds.Columns {
			if claimed[col] || excludedColumn(col, spec) {
				continue
			}
			if contentMatches(ds, col, spec.contentPatterns) {
				detected[field] = ColumnMatch{Column: col, Confidence: ConfidenceLow}
				claimed[col] = true
				zap.L().Info("detector: field matched by content",
					zap.String("field", field),
					zap.String("column", col),
				)
				break
			}
		}
	}

	return detected
}

func specsByPriority() []fieldSpec {
	specs := make([]fieldSpec, len(fieldSpecs))
	copy(specs, fieldSpecs)
	sort.SliceStable(specs, func(i, j int) bool {
		return effectivePriority(specs[i]) < effectivePriority(specs[j])
	})
	return specs
}

func effectivePriority(s fieldSpec) int {
	if s.priority == 0 {
		return 99
	}
	return s.priority
}

func specByField(field string) (fieldSpec, bool) {
	for _, s := range fieldSpecs {
		if s.field == field {
			return s, true
		}
	}
	return fieldSpec{}, false
}

func excludedColumn(column string, spec fieldSpec) bool {
	lower := strings.ToLower(column)
	for _, kw := range spec.excludeKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// fuzzyMatch scores a column name against each variant and keeps the best:
// exact equality is 1.0, containment scores len(shorter)/len(longer)+0.3,
// otherwise token-set Jaccard similarity.
func fuzzyMatch(column string, variants []string, threshold float64) (bool, float64) {
	col := strings.ToLower(strings.TrimSpace(column))
	best := 0.0

	for _, variant := range variants {
		if col == variant {
			return true, 1.0
		}

		if strings.Contains(col, variant) || strings.Contains(variant, col) {
			longer := len(col)
			if len(variant) > longer {
				longer = len(variant)
			}
			shorter := len(col) + len(variant) - longer
			if longer > 0 {
				if score := float64(shorter)/float64(longer) + 0.3; score > best {
					best = score
				}
			}
		}

		if score := tokenSimilarity(col, variant); score > best {
			best = score
		}
	}

	return best >= threshold, best
}

// tokenSimilarity is shared whitespace-split words over the larger word set.
func tokenSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}
	setB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		setB[w] = true
	}

	common := 0
	for w := range setA {
		if setB[w] {
			common++
		}
	}

	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	return float64(common) / float64(larger)
}

// contentMatches samples up to the first 10 non-empty cells of a column and
// reports whether at least half of them match one of the patterns.
func contentMatches(ds *dataset.Dataset, column string, patterns []*regexp.Regexp) bool {
	var sample []string
	for _, cell := range ds.Column(column) {
		if cell.IsEmpty() {
			continue
		}
		sample = append(sample, strings.TrimSpace(cell.String()))
		if len(sample) == contentSampleSize {
			break
		}
	}
	if len(sample) == 0 {
		return false
	}

	matches := 0
	for _, value := range sample {
		for _, p := range patterns {
			if p.MatchString(value) {
				matches++
				break
			}
		}
	}

	return float64(matches) >= float64(len(sample))*contentMatchRatio
}
