package observability

// NoOpObserver discards every operation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver returns an Observer that discards every operation.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Notify forwards ctx to o when o is non-nil.
func Notify(o Observer, ctx OperationContext) {
	if o == nil {
		return
	}
	o.ObserveOperation(ctx)
}
