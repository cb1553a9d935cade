package sire

// MovementDirection selects which date column becomes the record's movement
// date and is echoed into the output line.
type MovementDirection string

const (
	MovementEntry MovementDirection = "E"
	MovementExit  MovementDirection = "S"
)

// ParseMovementDirection maps user input to a direction.
func ParseMovementDirection(s string) (MovementDirection, bool) {
	switch s {
	case "E", "e", "entry", "ENTRY", "entrada":
		return MovementEntry, true
	case "S", "s", "exit", "EXIT", "salida":
		return MovementExit, true
	}
	return "", false
}

// GuestRecord is one row's resolved state. It exists only for the duration of
// a single row's processing; accepted records are folded into output lines.
type GuestRecord struct {
	RowNumber int

	Documento       *FieldResult
	TipoDocumento   *FieldResult
	Nombres         *FieldResult
	PrimerApellido  *FieldResult
	SegundoApellido *FieldResult
	Nacionalidad    *FieldResult
	FechaNacimiento *FieldResult
	FechaMovimiento *FieldResult
	Procedencia     *FieldResult
	Destino         *FieldResult

	IsValid  bool
	Errors   []string
	Warnings []string
}

// Stats are the aggregate counters of one conversion pass. Every input row
// lands in exactly one of Valid, Skipped, Colombianos or Duplicados;
// Inferidos is an overlay counting fields that required inference.
type Stats struct {
	Total       int `json:"total"`
	Valid       int `json:"valid"`
	Skipped     int `json:"skipped"`
	Colombianos int `json:"colombianos"`
	Duplicados  int `json:"duplicados"`
	Inferidos   int `json:"inferidos"`
}

func fieldValue(fr *FieldResult) string {
	if fr == nil {
		return ""
	}
	return fr.Value
}
