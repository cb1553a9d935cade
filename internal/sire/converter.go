package sire

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/sire-cli/internal/dataset"
)

// DefaultCityCode is the reporting city when none is configured (Medellín).
const DefaultCityCode = "5001"

// OutputFieldCount is the fixed width of a SIRE report line.
const OutputFieldCount = 13

// Converter runs one dataset through the detection, resolution, inference and
// validation pipeline and assembles SIRE report lines. A Converter holds
// per-pass state (column map, stats, dedup set); concurrent datasets need one
// Converter each.
type Converter struct {
	hotelCode string
	cityCode  string

	columnMap ColumnMap
	stats     Stats
	errors    []string
	warnings  []string
}

// NewConverter creates a Converter for the given establishment. An empty
// cityCode falls back to DefaultCityCode. Both codes are echoed verbatim into
// every output line.
func NewConverter(hotelCode, cityCode string) *Converter {
	if cityCode == "" {
		cityCode = DefaultCityCode
	}
	return &Converter{hotelCode: hotelCode, cityCode: cityCode}
}

// DetectColumns recovers and stores the field-to-column mapping for a dataset.
func (c *Converter) DetectColumns(ds *dataset.Dataset) ColumnMap {
	c.columnMap = DetectColumns(ds)
	for field, m := range c.columnMap {
		zap.L().Info("detector: column bound",
			zap.String("field", field),
			zap.String("column", m.Column),
			zap.String("confidence", m.Confidence.String()),
		)
	}
	return c.columnMap
}

// ColumnMap returns the mapping from the last detection.
func (c *Converter) ColumnMap() ColumnMap { return c.columnMap }

// Errors returns the row-scoped errors accumulated by the last Convert.
func (c *Converter) Errors() []string { return c.errors }

// Warnings returns the non-fatal notes accumulated by the last Convert.
func (c *Converter) Warnings() []string { return c.warnings }

// Stats returns the counters of the last Convert.
func (c *Converter) Stats() Stats { return c.stats }

// Convert processes every row in input order and returns the accepted SIRE
// lines plus aggregate statistics. Rows are never reordered: deduplication is
// first-seen-wins and the pass is strictly sequential.
func (c *Converter) Convert(ds *dataset.Dataset, direction MovementDirection) ([]string, Stats) {
	c.DetectColumns(ds)

	c.stats = Stats{Total: ds.NumRows()}
	c.errors = nil
	c.warnings = nil

	var lines []string
	seen := make(map[string]bool)

	for idx := range ds.Rows {
		c.convertRow(ds, idx, direction, seen, &lines)
	}

	return lines, c.stats
}

// convertRow processes a single row behind a panic boundary: a failure in one
// row is recorded against that row and the pass continues.
func (c *Converter) convertRow(ds *dataset.Dataset, idx int, direction MovementDirection, seen map[string]bool, lines *[]string) {
	rowNumber := idx + 2 // header row plus 1-based indexing

	defer func() {
		if r := recover(); r != nil {
			c.stats.Skipped++
			c.errors = append(c.errors, fmt.Sprintf("row %d: unexpected failure: %v", rowNumber, r))
			zap.L().Error("converter: row failed",
				zap.Int("row", rowNumber),
				zap.Any("panic", r),
			)
		}
	}()

	guest, domestic := c.processGuest(ds, idx, direction)

	if domestic {
		c.stats.Colombianos++
		return
	}

	if !guest.IsValid {
		c.stats.Skipped++
		for _, err := range guest.Errors {
			c.errors = append(c.errors, fmt.Sprintf("row %d: %s", guest.RowNumber, err))
		}
		return
	}

	key := fieldValue(guest.Documento) + "|" + fieldValue(guest.FechaMovimiento) + "|" + string(direction)
	if seen[key] {
		c.stats.Duplicados++
		return
	}
	seen[key] = true

	*lines = append(*lines, c.formatLine(guest, direction))
	c.stats.Valid++

	for _, warn := range guest.Warnings {
		c.warnings = append(c.warnings, fmt.Sprintf("row %d: %s", guest.RowNumber, warn))
	}
}

// value fetches the row's cell for a canonical field through the column map.
// Unmapped fields read as absent, never as an error.
func (c *Converter) value(ds *dataset.Dataset, row int, field string) dataset.Cell {
	m, ok := c.columnMap[field]
	if !ok {
		return dataset.Empty()
	}
	return ds.Value(row, m.Column)
}

func (c *Converter) cellText(ds *dataset.Dataset, row int, field string) string {
	cell := c.value(ds, row, field)
	if cell.IsEmpty() {
		return ""
	}
	return strings.TrimSpace(cell.String())
}

// processGuest resolves one row into a GuestRecord. The domestic flag marks
// rows whose nationality resolves to Colombia; those are excluded by policy,
// not errored.
func (c *Converter) processGuest(ds *dataset.Dataset, idx int, direction MovementDirection) (*GuestRecord, bool) {
	guest := &GuestRecord{RowNumber: idx + 2}

	// Document number gates everything else.
	docStr := c.cellText(ds, idx, FieldNumeroDocumento)
	switch strings.ToLower(docStr) {
	case "nan", "none", "null":
		docStr = ""
	}

	if ok, msg := ValidateDocument(docStr); !ok {
		guest.Errors = append(guest.Errors, "document: "+msg)
		return guest, false
	}
	guest.Documento = &FieldResult{Value: docStr, Confidence: ConfidenceHigh, Source: FieldNumeroDocumento}

	tipoCode, tipoConf := ResolveDocumentType(c.cellText(ds, idx, FieldTipoDocumento))
	guest.TipoDocumento = &FieldResult{Value: tipoCode, Confidence: tipoConf, Source: FieldTipoDocumento}

	// Explicit surname column: first token is the first surname, the rest
	// collapse into the second.
	if _, ok := c.columnMap[FieldPrimerApellido]; ok {
		raw := c.cellText(ds, idx, FieldPrimerApellido)
		parts := strings.Fields(raw)

		var primer, segundo string
		if len(parts) >= 2 {
			primer = NormalizeName(parts[0])
			segundo = NormalizeName(strings.Join(parts[1:], " "))
		} else {
			primer = NormalizeName(raw)
		}

		guest.PrimerApellido = &FieldResult{Value: primer, Confidence: ConfidenceHigh, Source: FieldPrimerApellido}
		segundoConf := ConfidenceNone
		if segundo != "" {
			segundoConf = ConfidenceHigh
		}
		guest.SegundoApellido = &FieldResult{Value: segundo, Confidence: segundoConf}
	}

	if _, ok := c.columnMap[FieldNombres]; ok {
		nombres := NormalizeName(c.cellText(ds, idx, FieldNombres))
		guest.Nombres = &FieldResult{Value: nombres, Confidence: ConfidenceHigh, Source: FieldNombres}
	} else if _, ok := c.columnMap[FieldNombreCompleto]; ok && guest.PrimerApellido == nil {
		primer, segundo, nombres := SplitFullName(c.cellText(ds, idx, FieldNombreCompleto))

		guest.PrimerApellido = &FieldResult{Value: primer, Confidence: ConfidenceMedium, Source: FieldNombreCompleto, Notes: "split from full name"}
		guest.SegundoApellido = &FieldResult{Value: segundo, Confidence: ConfidenceMedium}
		guest.Nombres = &FieldResult{Value: nombres, Confidence: ConfidenceMedium, Source: FieldNombreCompleto, Notes: "split from full name"}
		c.stats.Inferidos++
	}

	nacCode, nacConf := ResolveCountry(c.cellText(ds, idx, FieldNacionalidad))

	if nacCode == "" {
		if _, ok := c.columnMap[FieldProcedencia]; ok {
			nacCode, nacConf = InferNationalityFromOrigin(c.cellText(ds, idx, FieldProcedencia))
			if nacCode != "" {
				guest.Warnings = append(guest.Warnings, "nationality inferred from origin country")
				c.stats.Inferidos++
			}
		}
	}

	if nacCode == ColombiaCode {
		return guest, true
	}

	guest.Nacionalidad = &FieldResult{Value: nacCode, Confidence: nacConf, Source: FieldNacionalidad}

	movementField := FieldFechaCheckin
	if direction == MovementExit {
		movementField = FieldFechaCheckout
	}
	fechaMov, fechaMovConf := ParseDate(c.value(ds, idx, movementField))
	guest.FechaMovimiento = &FieldResult{Value: fechaMov, Confidence: fechaMovConf, Source: movementField}

	fechaNac, fechaNacConf := ParseDate(c.value(ds, idx, FieldFechaNacimiento))
	guest.FechaNacimiento = &FieldResult{Value: fechaNac, Confidence: fechaNacConf, Source: FieldFechaNacimiento}

	// Origin country, falling back to the resolved nationality.
	procCode, procConf := ResolveCountry(c.cellText(ds, idx, FieldProcedencia))
	if procCode == "" && fieldValue(guest.Nacionalidad) != "" {
		procCode = guest.Nacionalidad.Value
		procConf = ConfidenceLow
		guest.Warnings = append(guest.Warnings, "origin country inferred from nationality")
	}
	if procConf == ConfidenceNone {
		procConf = ConfidenceLow
	}
	guest.Procedencia = &FieldResult{Value: procCode, Confidence: procConf, Source: FieldProcedencia}

	// Destination: a domestic city resolves to Colombia, otherwise try a
	// country, otherwise default to Colombia. Every record carries one.
	destRaw := c.cellText(ds, idx, FieldDestino)
	destCode, destConf := ColombiaCodeIfCity(destRaw)
	if destCode == "" {
		destCode, destConf = ResolveCountry(destRaw)
	}
	if destCode == "" {
		destCode = ColombiaCode
	}
	if destConf == ConfidenceNone {
		destConf = ConfidenceLow
	}
	guest.Destino = &FieldResult{Value: destCode, Confidence: destConf, Source: FieldDestino}

	required := []struct {
		name string
		fr   *FieldResult
	}{
		{"documento", guest.Documento},
		{"nombres", guest.Nombres},
		{"primer_apellido", guest.PrimerApellido},
		{"nacionalidad", guest.Nacionalidad},
		{"fecha_movimiento", guest.FechaMovimiento},
		{"fecha_nacimiento", guest.FechaNacimiento},
	}
	for _, rf := range required {
		if rf.fr == nil || rf.fr.Value == "" {
			guest.Errors = append(guest.Errors, "missing "+rf.name)
		}
	}

	guest.IsValid = len(guest.Errors) == 0
	return guest, false
}

// formatLine assembles the fixed-order 13-field tab-separated SIRE line.
func (c *Converter) formatLine(guest *GuestRecord, direction MovementDirection) string {
	tipo := fieldValue(guest.TipoDocumento)
	if tipo == "" {
		tipo = DocTypePassport
	}
	destino := fieldValue(guest.Destino)
	if destino == "" {
		destino = ColombiaCode
	}

	fields := []string{
		c.hotelCode,
		c.cityCode,
		tipo,
		fieldValue(guest.Documento),
		fieldValue(guest.Nacionalidad),
		fieldValue(guest.PrimerApellido),
		fieldValue(guest.SegundoApellido),
		fieldValue(guest.Nombres),
		string(direction),
		fieldValue(guest.FechaMovimiento),
		fieldValue(guest.Procedencia),
		destino,
		fieldValue(guest.FechaNacimiento),
	}
	return strings.Join(fields, "\t")
}
