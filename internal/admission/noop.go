package admission

import "github.com/Borislavv/go-ash-intersect/model"

type noopAdmitter struct{}

func newNoOp() *noopAdmitter {
	return &noopAdmitter{}
}

func (n *noopAdmitter) Estimate(_, _ uint64, side model.HashSide) model.Estimate {
	return model.Estimate{HashSide: side}
}

func (n *noopAdmitter) Admit(sizeA, sizeB uint64, side model.HashSide, available uint64) model.Outcome {
	return model.Admit(n.Estimate(sizeA, sizeB, side), available)
}
