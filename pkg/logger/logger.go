package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger é uma implementação simples de Logger com pares chave=valor
type SimpleLogger struct {
	out         *log.Logger
	err         *log.Logger
	debugActive bool
}

// NewLogger cria uma nova instância de Logger. Mensagens de debug só são
// emitidas quando LOG_LEVEL=debug.
func NewLogger() Logger {
	return &SimpleLogger{
		out:         log.New(os.Stdout, "", log.Ldate|log.Ltime),
		err:         log.New(os.Stderr, "", log.Ldate|log.Ltime),
		debugActive: strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug"),
	}
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.out.Println(format("INFO", msg, keysAndValues))
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.err.Println(format("ERROR", msg, keysAndValues))
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.debugActive {
		return
	}
	l.out.Println(format("DEBUG", msg, keysAndValues))
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.out.Println(format("WARN", msg, keysAndValues))
}

func format(level, msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	if len(keysAndValues)%2 != 0 {
		fmt.Fprintf(&b, " %v", keysAndValues[len(keysAndValues)-1])
	}
	return b.String()
}
