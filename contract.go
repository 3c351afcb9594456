package fnzip

// OnceFunc is implemented by callables that may be called at most once.
// After CallOnce has been called, the value must not be used again.
type OnceFunc[In, Out any] interface {
	CallOnce(In) Out
}

// MutFunc is implemented by callables that may be called any number
// of times, where each call may observe state changed by the previous
// one. Calls must not be made concurrently.
type MutFunc[In, Out any] interface {
	OnceFunc[In, Out]
	CallMut(In) Out
}

// Func is implemented by callables that may be called any number
// of times without any observable change of internal state.
type Func[In, Out any] interface {
	MutFunc[In, Out]
	Call(In) Out
}
