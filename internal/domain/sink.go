package domain

import "fmt"

// Sink принимает строки статуса, которые выводят операции сущностей.
// Передается явно в каждую операцию вместо глобальной консоли.
type Sink interface {
	Emit(line string)
}

type discardSink struct{}

func (discardSink) Emit(string) {}

// Discard отбрасывает все строки
var Discard Sink = discardSink{}

func emitf(sink Sink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Emit(fmt.Sprintf(format, args...))
}
