package candidate

import (
	"fmt"
	"math"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
)

// Transaction is a candidate over one transaction record. The prevouts flag
// says whether inputs carry resolved previous outputs (verbosity-3 blocks,
// prevout-resolved mempool fetches); input-side derivations need it.
type Transaction struct {
	Record
	prevouts bool

	outOnce    sync.Once
	outCounter map[float64]int
	nEq        int
	den        float64
	totalOut   btcutil.Amount

	inOnce  sync.Once
	totalIn btcutil.Amount
	inErr   error

	feeOnce sync.Once
	absFee  btcutil.Amount
	feeErr  error

	relOnce sync.Once
	relFee  float64
	relErr  error
}

// NewTransaction wraps a decoded transaction record.
func NewTransaction(raw map[string]any, prevouts bool) *Transaction {
	return &Transaction{Record: Record{raw: raw}, prevouts: prevouts}
}

// HasPrevouts reports whether inputs carry resolved previous outputs.
func (t *Transaction) HasPrevouts() bool {
	return t.prevouts
}

// Inputs returns the raw input records.
func (t *Transaction) Inputs() []map[string]any {
	return asObjects(t.raw["vin"])
}

// Outputs returns the raw output records.
func (t *Transaction) Outputs() []map[string]any {
	return asObjects(t.raw["vout"])
}

// IsCoinbase reports whether the first input lacks a previous-output
// reference.
func (t *Transaction) IsCoinbase() bool {
	inputs := t.Inputs()
	if len(inputs) == 0 {
		return false
	}
	_, ok := inputs[0]["coinbase"]
	return ok
}

// NIn returns the input count.
func (t *Transaction) NIn() int {
	return len(t.Inputs())
}

// NOut returns the output count.
func (t *Transaction) NOut() int {
	return len(t.Outputs())
}

// OutValues returns each output value in bitcoin, in output order.
func (t *Transaction) OutValues() []float64 {
	outputs := t.Outputs()
	values := make([]float64, 0, len(outputs))
	for _, out := range outputs {
		if v, ok := asNumber(out["value"]); ok {
			values = append(values, v)
		}
	}
	return values
}

// OutCounter returns the multiset of output values (value to frequency).
func (t *Transaction) OutCounter() map[float64]int {
	t.deriveOutputs()
	return t.outCounter
}

// NEq returns the frequency of the most common equally sized output.
func (t *Transaction) NEq() int {
	t.deriveOutputs()
	return t.nEq
}

// Den returns the denomination: the value of the most common equally sized
// output, or 0 when no two outputs share a value.
func (t *Transaction) Den() float64 {
	t.deriveOutputs()
	return t.den
}

// TotalOut returns the sum of all outputs, in bitcoin.
func (t *Transaction) TotalOut() float64 {
	t.deriveOutputs()
	return t.totalOut.ToBTC()
}

// TotalIn returns the sum of all inputs in bitcoin, taken from resolved
// prevouts. Coinbase transactions report 0.
func (t *Transaction) TotalIn() (float64, error) {
	t.deriveInputs()
	if t.inErr != nil {
		return 0, t.inErr
	}
	return t.totalIn.ToBTC(), nil
}

// AbsFee returns the absolute fee in bitcoin: the node-reported fee when
// present, otherwise inputs minus outputs. Coinbase transactions always
// report 0; a negative computed fee on a non-coinbase transaction means the
// record is malformed.
func (t *Transaction) AbsFee() (float64, error) {
	t.feeOnce.Do(func() {
		if t.IsCoinbase() {
			t.absFee = 0
			return
		}
		if v, ok := t.raw["fee"]; ok {
			f, ok := asNumber(v)
			if !ok {
				t.feeErr = fmt.Errorf("%w: fee is not a number", ErrMalformedRecord)
				return
			}
			t.absFee, t.feeErr = btcutil.NewAmount(f)
			return
		}
		t.deriveInputs()
		if t.inErr != nil {
			t.feeErr = t.inErr
			return
		}
		t.deriveOutputs()
		fee := t.totalIn - t.totalOut
		if fee < 0 {
			t.feeErr = fmt.Errorf("%w: negative fee %v on non-coinbase transaction", ErrMalformedRecord, fee)
			return
		}
		t.absFee = fee
	})
	if t.feeErr != nil {
		return 0, t.feeErr
	}
	return t.absFee.ToBTC(), nil
}

// RelFee returns the fee in satoshi per virtual byte, rounded to one
// decimal. Coinbase transactions report 0.
func (t *Transaction) RelFee() (float64, error) {
	t.relOnce.Do(func() {
		if t.IsCoinbase() {
			return
		}
		if _, err := t.AbsFee(); err != nil {
			t.relErr = err
			return
		}
		vsize, ok := asNumber(t.raw["vsize"])
		if !ok || vsize <= 0 {
			t.relErr = fmt.Errorf("%w: missing or invalid vsize", ErrMalformedRecord)
			return
		}
		t.relFee = math.Round(float64(t.absFee)/vsize*10) / 10
	})
	if t.relErr != nil {
		return 0, t.relErr
	}
	return t.relFee, nil
}

// Date returns the transaction timestamp formatted as "YYYY-MM-DD HH:MM".
func (t *Transaction) Date() (string, error) {
	ts, ok := asNumber(t.raw["timestamp_date"])
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFieldNotFound, "timestamp_date")
	}
	return formatUnix(ts), nil
}

// InAddrs returns each input's prevout address, empty for coinbase.
func (t *Transaction) InAddrs() []string {
	if t.IsCoinbase() {
		return []string{}
	}
	inputs := t.Inputs()
	addrs := make([]string, 0, len(inputs))
	for _, in := range inputs {
		addrs = append(addrs, scriptPubKeyField(in["prevout"], "address"))
	}
	return addrs
}

// OutAddrs returns each output's address ("" when absent).
func (t *Transaction) OutAddrs() []string {
	outputs := t.Outputs()
	addrs := make([]string, 0, len(outputs))
	for _, out := range outputs {
		addrs = append(addrs, scriptPubKeyField(out, "address"))
	}
	return addrs
}

// Addresses returns input addresses followed by output addresses.
func (t *Transaction) Addresses() []string {
	return append(t.InAddrs(), t.OutAddrs()...)
}

// InTypes returns each input's prevout script type, empty for coinbase.
func (t *Transaction) InTypes() []string {
	if t.IsCoinbase() {
		return []string{}
	}
	inputs := t.Inputs()
	types := make([]string, 0, len(inputs))
	for _, in := range inputs {
		types = append(types, scriptPubKeyField(in["prevout"], "type"))
	}
	return types
}

// OutTypes returns each output's script type.
func (t *Transaction) OutTypes() []string {
	outputs := t.Outputs()
	types := make([]string, 0, len(outputs))
	for _, out := range outputs {
		types = append(types, scriptPubKeyField(out, "type"))
	}
	return types
}

// Types returns input script types followed by output script types.
func (t *Transaction) Types() []string {
	return append(t.InTypes(), t.OutTypes()...)
}

// Field resolves derived transaction attributes first, then raw keys.
func (t *Transaction) Field(name string) (any, error) {
	switch name {
	case "n_in":
		return t.NIn(), nil
	case "n_out":
		return t.NOut(), nil
	case "n_eq":
		return t.NEq(), nil
	case "den":
		return t.Den(), nil
	case "is_coinbase":
		return t.IsCoinbase(), nil
	case "out_counter":
		return t.OutCounter(), nil
	case "total_out":
		return t.TotalOut(), nil
	case "total_in":
		return t.TotalIn()
	case "abs_fee":
		return t.AbsFee()
	case "rel_fee":
		return t.RelFee()
	case "date":
		return t.Date()
	case "in_addrs":
		return t.InAddrs(), nil
	case "out_addrs":
		return t.OutAddrs(), nil
	case "addresses":
		return t.Addresses(), nil
	case "in_types":
		return t.InTypes(), nil
	case "out_types":
		return t.OutTypes(), nil
	case "types":
		return t.Types(), nil
	}
	return t.Record.Field(name)
}

// deriveOutputs computes the output-side aggregates once. The denomination
// tie-break is deterministic: the first value, in output order, to reach the
// maximum frequency.
func (t *Transaction) deriveOutputs() {
	t.outOnce.Do(func() {
		values := t.OutValues()
		t.outCounter = make(map[float64]int, len(values))
		var total float64
		for _, v := range values {
			t.outCounter[v]++
			total += v
		}
		for _, freq := range t.outCounter {
			if freq > t.nEq {
				t.nEq = freq
			}
		}
		if t.nEq > 1 {
			for _, v := range values {
				if t.outCounter[v] == t.nEq {
					t.den = v
					break
				}
			}
		}
		// Errors here would mean absurd output totals; treat as zero.
		t.totalOut, _ = btcutil.NewAmount(total)
	})
}

func (t *Transaction) deriveInputs() {
	t.inOnce.Do(func() {
		if t.IsCoinbase() {
			return
		}
		var total float64
		for i, in := range t.Inputs() {
			prevout, ok := in["prevout"].(map[string]any)
			if !ok {
				t.inErr = fmt.Errorf("%w: input %d has no prevout", ErrFieldNotFound, i)
				return
			}
			v, ok := asNumber(prevout["value"])
			if !ok {
				t.inErr = fmt.Errorf("%w: input %d prevout has no value", ErrMalformedRecord, i)
				return
			}
			total += v
		}
		t.totalIn, t.inErr = btcutil.NewAmount(total)
	})
}

func scriptPubKeyField(v any, key string) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	spk, ok := obj["scriptPubKey"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := spk[key].(string)
	return s
}
