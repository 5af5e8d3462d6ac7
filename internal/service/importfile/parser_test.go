package importfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseTabSeparated(t *testing.T) {
	t.Parallel()

	data := []byte("ZK_ID\tLOG_DATE\tTIME_IN\tTIME_OUT\n" +
		"101\t2026-08-03\t08:55\t18:02\n" +
		"102\t08/04/2026\t09:10\t\n" +
		"\t\t\t\n")

	rows, err := ParseTabSeparated(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "101", rows[0].BiometricID)
	assert.Equal(t, "2026-08-03", rows[0].LogDate)
	assert.Equal(t, "08:55", rows[0].TimeIn)
	require.NotNil(t, rows[0].TimeOut)
	assert.Equal(t, "18:02", *rows[0].TimeOut)

	// Slash dates are normalized, missing time out stays nil.
	assert.Equal(t, "2026-08-04", rows[1].LogDate)
	assert.Nil(t, rows[1].TimeOut)
}

func TestParseTabSeparated_MissingColumns(t *testing.T) {
	t.Parallel()

	_, err := ParseTabSeparated([]byte("name\tdepartment\nAlice\tOps\n"))
	assert.Error(t, err)
}

func TestParseExcel(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"biometric_id", "date", "time_in", "time_out"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"101", "2026-08-03", "08:55", "18:02"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ParseExcel(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "101", rows[0].BiometricID)
	assert.Equal(t, "2026-08-03", rows[0].LogDate)
}

func TestParseDat_GroupsPunchesPerUserDay(t *testing.T) {
	t.Parallel()

	data := []byte(
		"101\t2026-08-03 18:02:11\n" +
			"101\t2026-08-03 08:55:03\n" +
			"101\t2026-08-03 12:30:00\n" +
			"102\t2026-08-03 09:10:45\n" +
			"101\t2026-08-04 09:01:00\n" +
			"garbage line without a tab\n" +
			"103\tnot-a-timestamp\n")

	rows, err := ParseDat(data)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Earliest punch opens the day, the latest closes it.
	assert.Equal(t, "101", rows[0].BiometricID)
	assert.Equal(t, "2026-08-03", rows[0].LogDate)
	assert.Equal(t, "08:55:03", rows[0].TimeIn)
	require.NotNil(t, rows[0].TimeOut)
	assert.Equal(t, "18:02:11", *rows[0].TimeOut)

	// A single punch leaves the row open.
	assert.Equal(t, "2026-08-04", rows[1].LogDate)
	assert.Equal(t, "09:01:00", rows[1].TimeIn)
	assert.Nil(t, rows[1].TimeOut)

	assert.Equal(t, "102", rows[2].BiometricID)
	assert.Nil(t, rows[2].TimeOut)
}

func TestParseDat_NothingParseable(t *testing.T) {
	t.Parallel()

	_, err := ParseDat([]byte("junk\nmore junk\n"))
	assert.Error(t, err)
}

func TestParse_DispatchesOnExtension(t *testing.T) {
	t.Parallel()

	tsv := []byte("zk_id\tlog_date\ttime_in\n101\t2026-08-03\t08:55\n")

	rows, err := Parse("export.TXT", tsv)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = Parse("punches.dat", []byte("101\t2026-08-03 08:55:00\n"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = Parse("report.pdf", nil)
	assert.Error(t, err)
}
