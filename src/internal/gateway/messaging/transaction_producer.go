package messaging

import (
	"investment-service/src/internal/model"
	kafka "investment-service/src/pkg/kafka/confluent"
	"investment-service/src/pkg/log"
)

type TransactionProducer struct {
	RecordedProducer   Producer[*model.TransactionEvent]
	SimulationProducer Producer[*model.SimulationEvent]
}

func NewTransactionProducer(producer kafka.Producer, log log.Log) *TransactionProducer {
	return &TransactionProducer{
		RecordedProducer: Producer[*model.TransactionEvent]{
			Producer: producer,
			Topic:    "transaction-recorded",
			Log:      log,
		},
		SimulationProducer: Producer[*model.SimulationEvent]{
			Producer: producer,
			Topic:    "daily-simulation-completed",
			Log:      log,
		},
	}
}

func (u *TransactionProducer) SendTransactionRecorded(event *model.TransactionEvent) error {
	return u.RecordedProducer.Send(event)
}

func (u *TransactionProducer) SendSimulationCompleted(event *model.SimulationEvent) error {
	return u.SimulationProducer.Send(event)
}
