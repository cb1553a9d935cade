package sire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sire-cli/internal/dataset"
)

func guestDataset(rows ...[]string) *dataset.Dataset {
	ds := dataset.New([]string{
		"Document Number", "Given Names", "Surname", "Nationality",
		"Birth Date", "Arrival Date",
	})
	for _, row := range rows {
		ds.AppendStringRow(row)
	}
	return ds
}

func TestConvert_SingleGuest(t *testing.T) {
	ds := guestDataset(
		[]string{"AB123456", "Maria", "Garcia Lopez", "Estados Unidos", "15/03/1990", "01/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	require.Len(t, lines, 1)
	assert.Equal(t,
		"12345\t5001\t3\tAB123456\t249\tGARCIA\tLOPEZ\tMARIA\tE\t01/06/2024\t249\t169\t15/03/1990",
		lines[0],
	)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Valid)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 0, stats.Inferidos)

	// Origin was not in the input; it fell back to the nationality.
	require.NotEmpty(t, conv.Warnings())
	assert.Contains(t, conv.Warnings()[0], "origin country inferred from nationality")
}

func TestConvert_LineWidth(t *testing.T) {
	ds := guestDataset(
		[]string{"AB123456", "Maria", "Garcia", "Francia", "15/03/1990", "01/06/2024"},
	)

	conv := NewConverter("12345", "")
	lines, _ := conv.Convert(ds, MovementEntry)

	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	assert.Len(t, fields, OutputFieldCount)
	assert.Equal(t, DefaultCityCode, fields[1])
}

func TestConvert_DomesticGuestExcluded(t *testing.T) {
	ds := guestDataset(
		[]string{"XY998877", "Carlos", "Restrepo", "Colombia", "20/07/1985", "01/06/2024"},
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "AB123456")
	assert.Equal(t, 1, stats.Colombianos)
	assert.Equal(t, 1, stats.Valid)
	assert.Equal(t, 0, stats.Skipped)
}

func TestConvert_DeduplicationFirstSeenWins(t *testing.T) {
	ds := guestDataset(
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "02/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	// Same document on a different date is a distinct movement.
	require.Len(t, lines, 2)
	assert.Equal(t, 2, stats.Valid)
	assert.Equal(t, 1, stats.Duplicados)
}

func TestConvert_InvalidDocumentSkipped(t *testing.T) {
	ds := guestDataset(
		[]string{"111", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
		[]string{"11111111", "Ana", "Lopez", "Peru", "10/01/1992", "01/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	assert.Empty(t, lines)
	assert.Equal(t, 2, stats.Skipped)
	require.Len(t, conv.Errors(), 2)
	assert.Contains(t, conv.Errors()[0], "row 2: document: document too short")
	assert.Contains(t, conv.Errors()[1], "row 3: document: document has invalid pattern")
}

func TestConvert_MissingRequiredFieldSkipped(t *testing.T) {
	ds := guestDataset(
		[]string{"AB123456", "Maria", "Garcia", "Peru", "", "01/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	assert.Empty(t, lines)
	assert.Equal(t, 1, stats.Skipped)
	require.NotEmpty(t, conv.Errors())
	assert.Contains(t, conv.Errors()[0], "missing fecha_nacimiento")
}

// Every input row lands in exactly one outcome bucket.
func TestConvert_StatsAccounting(t *testing.T) {
	ds := guestDataset(
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
		[]string{"XY998877", "Carlos", "Restrepo", "Colombia", "20/07/1985", "01/06/2024"},
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
		[]string{"111", "Ana", "Lopez", "Peru", "10/01/1992", "01/06/2024"},
		[]string{"CD789012", "Luis", "Mora", "Chile", "", "01/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, stats.Total, stats.Valid+stats.Skipped+stats.Colombianos+stats.Duplicados)
	assert.Len(t, lines, stats.Valid)
}

func TestConvert_ExitUsesDepartureDate(t *testing.T) {
	ds := dataset.New([]string{
		"Document Number", "Given Names", "Surname", "Nationality",
		"Birth Date", "Arrival Date", "Departure Date",
	})
	ds.AppendStringRow([]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024", "05/06/2024"})

	conv := NewConverter("12345", "5001")
	lines, _ := conv.Convert(ds, MovementExit)

	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	assert.Equal(t, "S", fields[8])
	assert.Equal(t, "05/06/2024", fields[9])
}

func TestConvert_FullNameSplit(t *testing.T) {
	ds := dataset.New([]string{
		"Document Number", "Guest Name", "Nationality", "Birth Date", "Arrival Date",
	})
	ds.AppendStringRow([]string{"AB123456", "Maria Garcia", "Peru", "15/03/1990", "01/06/2024"})

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	assert.Equal(t, "GARCIA", fields[5])
	assert.Equal(t, "", fields[6])
	assert.Equal(t, "MARIA", fields[7])
	assert.Equal(t, 1, stats.Inferidos)
}

func TestConvert_NationalityInferredFromOrigin(t *testing.T) {
	ds := dataset.New([]string{
		"Document Number", "Given Names", "Surname", "Nationality",
		"Birth Date", "Arrival Date", "Pais de Procedencia",
	})
	ds.AppendStringRow([]string{"AB123456", "Maria", "Garcia", "", "15/03/1990", "01/06/2024", "Francia"})

	conv := NewConverter("12345", "5001")
	lines, stats := conv.Convert(ds, MovementEntry)

	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	assert.Equal(t, "275", fields[4])
	assert.Equal(t, "275", fields[10])
	assert.Equal(t, 1, stats.Inferidos)

	require.NotEmpty(t, conv.Warnings())
	assert.Contains(t, conv.Warnings()[0], "nationality inferred from origin country")
}

func TestConvert_DomesticCityDestination(t *testing.T) {
	ds := dataset.New([]string{
		"Document Number", "Given Names", "Surname", "Nationality",
		"Birth Date", "Arrival Date", "Pais de Destino",
	})
	ds.AppendStringRow([]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024", "Cartagena"})

	conv := NewConverter("12345", "5001")
	lines, _ := conv.Convert(ds, MovementEntry)

	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	assert.Equal(t, ColombiaCode, fields[11])
}

func TestParseMovementDirection(t *testing.T) {
	for _, s := range []string{"E", "e", "entry", "entrada"} {
		dir, ok := ParseMovementDirection(s)
		assert.True(t, ok, "input %q", s)
		assert.Equal(t, MovementEntry, dir, "input %q", s)
	}
	for _, s := range []string{"S", "s", "exit", "salida"} {
		dir, ok := ParseMovementDirection(s)
		assert.True(t, ok, "input %q", s)
		assert.Equal(t, MovementExit, dir, "input %q", s)
	}
	_, ok := ParseMovementDirection("x")
	assert.False(t, ok)
}

func TestReport(t *testing.T) {
	ds := guestDataset(
		[]string{"AB123456", "Maria", "Garcia", "Peru", "15/03/1990", "01/06/2024"},
		[]string{"111", "Ana", "Lopez", "Peru", "10/01/1992", "01/06/2024"},
	)

	conv := NewConverter("12345", "5001")
	conv.Convert(ds, MovementEntry)

	report := conv.Report()
	assert.Contains(t, report, "SIRE CONVERSION REPORT")
	assert.Contains(t, report, "Rows processed:        2")
	assert.Contains(t, report, "Valid records:         1")
	assert.Contains(t, report, "document too short")
}
