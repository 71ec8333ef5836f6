// Package narration содержит реализации приемника строк статуса,
// который операции сущностей получают явным параметром.
package narration

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Sink повторяет domain.Sink, чтобы пакет не зависел от домена
type Sink interface {
	Emit(line string)
}

// WriterSink пишет каждую строку в io.Writer (обычно os.Stdout)
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line) //nolint:errcheck // консольный вывод
}

// Recorder запоминает строки, используется в тестах и для итогов прогона
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines возвращает копию записанных строк
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Reset очищает записанные строки
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

// ZapSink дублирует строки статуса в структурированный лог
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Emit(line string) {
	s.logger.Info("narration", zap.String("line", line))
}

type tee []Sink

func (t tee) Emit(line string) {
	for _, s := range t {
		s.Emit(line)
	}
}

// Tee раздает каждую строку во все переданные приемники, nil пропускаются
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
