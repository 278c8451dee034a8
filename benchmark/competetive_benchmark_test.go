package benchmark

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/flowlog/flowlog/formatter"
)

// ---------------------------------------------------------------------------
// Scenario 1 – one record rendered as a JSON line
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_JSONLine(b *testing.B) {
	b.Run("flowlog", func(b *testing.B) {
		f := formatter.NewJSONFormatter()
		r := sampleRecord()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = f.Format(r)
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		entry := zapcore.Entry{
			Time:       sampleRecord().Created,
			Level:      zapcore.InfoLevel,
			LoggerName: "gateway",
			Message:    "request handled",
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			buf, err := enc.EncodeEntry(entry, nil)
			if err != nil {
				b.Fatal(err)
			}
			buf.Free()
		}
	})

	b.Run("slog", func(b *testing.B) {
		h := slog.NewJSONHandler(io.Discard, nil)
		rec := slog.NewRecord(sampleRecord().Created, slog.LevelInfo, "request handled", 0)
		ctx := context.Background()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = h.Handle(ctx, rec)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		f := &logrus.JSONFormatter{}
		l := logrus.New()
		l.SetOutput(io.Discard)
		entry := logrus.NewEntry(l)
		entry.Time = sampleRecord().Created
		entry.Level = logrus.InfoLevel
		entry.Message = "request handled"
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := f.Format(entry); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := zerolog.New(io.Discard).With().Timestamp().Logger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("request handled")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – one record rendered as a colored terminal line
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_ColoredLine(b *testing.B) {
	b.Run("flowlog", func(b *testing.B) {
		f := formatter.NewColorFormatter("{created} {levelname} {name} {msg}", formatter.Config{})
		r := sampleRecord()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = f.Format(r)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		f := &logrus.TextFormatter{ForceColors: true}
		l := logrus.New()
		l.SetOutput(io.Discard)
		entry := logrus.NewEntry(l)
		entry.Time = sampleRecord().Created
		entry.Level = logrus.InfoLevel
		entry.Message = "request handled"
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := f.Format(entry); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := zerolog.New(zerolog.ConsoleWriter{Out: io.Discard, NoColor: false})
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("request handled")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – sanitized plain line (escape stripping + length cap)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_PlainLine(b *testing.B) {
	f := formatter.NewPlainFormatter("{created} {levelname} {name} {msg}", formatter.Config{})
	r := sampleRecord()
	r.Msg = "request \x1b[32mhandled\x1b[0m in \x1b[1m12ms\x1b[0m"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(r)
	}
}
