package reference

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("reference entry not found")
	ErrInvalid  = errors.New("invalid reference entry")
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
	KindAsset   Kind = "asset"
)

func (k Kind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindAsset:
		return true
	default:
		return false
	}
}

type Category struct {
	ID   int
	Name string
	Kind Kind
}

func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalid)
	}

	if !c.Kind.Valid() {
		return fmt.Errorf("%w: unknown category kind %q", ErrInvalid, c.Kind)
	}

	return nil
}

type Bank struct {
	ID      int
	Name    string
	Type    string
	Last4   string
	Balance float64
	Primary bool
}

func (b *Bank) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: bank name is required", ErrInvalid)
	}

	if len(b.Last4) > 4 {
		return fmt.Errorf("%w: last4 must have at most 4 characters", ErrInvalid)
	}

	return nil
}

type BrokerStatus string

const (
	BrokerConnected    BrokerStatus = "connected"
	BrokerDisconnected BrokerStatus = "disconnected"
)

type Broker struct {
	ID          int
	Name        string
	Status      BrokerStatus
	LastSync    *time.Time
	SyncEnabled bool
}

func (b *Broker) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: broker name is required", ErrInvalid)
	}

	switch b.Status {
	case BrokerConnected, BrokerDisconnected:
	case "":
		b.Status = BrokerDisconnected
	default:
		return fmt.Errorf("%w: unknown broker status %q", ErrInvalid, b.Status)
	}

	return nil
}
