package clients

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type levelWriter struct {
	writer io.Writer
	level  zerolog.Level
}

func (lw *levelWriter) Write(p []byte) (n int, err error) {
	return lw.writer.Write(p)
}

func (lw *levelWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	if level >= lw.level {
		return lw.writer.Write(p)
	}
	return len(p), nil
}

// InitLog configura o logger global: console em stdout e arquivo rotativo em
// <rootDir>/log/<fileName>. O arquivo recebe apenas Info ou acima.
// Com quiet=true o console é omitido (útil em testes).
// Devolve o lumberjack.Logger para que o chamador o feche e o caminho do arquivo.
func InitLog(fileName, rootDir string, quiet ...bool) (*lumberjack.Logger, string) {
	logDir := filepath.Join(rootDir, "log")
	logFilePath := filepath.Join(logDir, fileName)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Printf("falha ao criar o diretório de logs: %v\n", err)
		os.Exit(1)
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	fileLevelWriter := &levelWriter{
		writer: lumberjackLogger,
		level:  zerolog.InfoLevel,
	}

	var multi zerolog.LevelWriter
	if len(quiet) > 0 && quiet[0] {
		multi = zerolog.MultiLevelWriter(fileLevelWriter)
	} else {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
		multi = zerolog.MultiLevelWriter(consoleWriter, fileLevelWriter)
	}

	logger := zerolog.New(multi).With().Timestamp().Logger()
	logger = logger.Level(zerolog.DebugLevel)

	log.Logger = logger

	log.Info().Msg("Logger configurado com sucesso")
	log.Info().Str("log_file", logFilePath).Msg("Logs serão gravados neste arquivo")

	return lumberjackLogger, logFilePath
}
