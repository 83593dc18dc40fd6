package logger

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	return ansi.ReplaceAllString(buf.String(), "")
}

func TestMinimalEncoderKeepsEveryField(t *testing.T) {
	ent := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "correction.engine",
		Message:    "Pass applied",
	}

	out := encode(t, newMinimalEncoder(), ent,
		zap.String(FieldPass, "refine-numbers"),
		zap.Int(FieldDurationMS, 4),
		zap.String(FieldType, "yfiles.layout.LayoutGraph"),
		zap.Bool("strict", false),
		zap.Float64("ratio", 0.5),
		zap.Strings("members", []string{"nodeCount", "edgeCount"}),
		zap.Error(nil),
	)

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "c.engine")
	assert.Contains(t, out, "Pass applied")
	assert.Contains(t, out, "pass=refine-numbers")
	assert.Contains(t, out, "duration_ms=4ms")
	assert.Contains(t, out, "type=yfiles.layout.LayoutGraph")
	assert.Contains(t, out, "strict=false")
	assert.Contains(t, out, "ratio=0.5")
	assert.Contains(t, out, "members=[nodeCount edgeCount]")
	assert.NotContains(t, out, "WARN")
}

func TestMinimalEncoderLevels(t *testing.T) {
	ent := zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "unresolved parameter"}
	assert.Contains(t, encode(t, newMinimalEncoder(), ent), "WARN")

	ent.Level = zapcore.ErrorLevel
	assert.Contains(t, encode(t, newMinimalEncoder(), ent), "ERROR")
}

func TestMinimalEncoderWithContext(t *testing.T) {
	enc := newMinimalEncoder().Clone().(*minimalEncoder)
	enc.AddString(FieldStage, "emit")
	enc.AddInt64(FieldCount, 12)

	out := encode(t, enc, zapcore.Entry{Time: time.Now(), Message: "done"}, zap.String(FieldFile, "Foo.kt"))
	assert.Contains(t, out, "stage=emit count=12 file=Foo.kt")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "c.engine", abbreviateName("correction.engine"))
	assert.Equal(t, "pipeline", abbreviateName("pipeline"))
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	assert.Equal(t, "gruvbox", currentTheme)
	SetTheme("solarized")
	assert.Equal(t, "gruvbox", currentTheme)
}
