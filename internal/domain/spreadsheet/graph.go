package spreadsheet

// Reconciliation DTOs: the in-memory change-set produced by processing an
// uploaded ledger against the entity store.
//
// Provenance flags:
//   - Readonly: the node was resolved from the store and must not be created
//     again on commit. Set once at construction, never flipped.
//   - Deleted: set by a human reviewer on the staged artifact to exclude the
//     node (and its subtree) from commit. The engine never sets it.
//
// Nodes are shared by pointer between the per-run cache and the graph, so two
// ledger rows naming the same agreement number resolve to the same instance.

// User identifies the login account of a payer.
type User struct {
	CPFCNPJ  string `json:"cpf_cnpj"`
	Readonly bool   `json:"readonly"`
}

// Boleto points at a payment-slip PDF extracted from the uploaded archive.
type Boleto struct {
	Path     string `json:"path"`
	Readonly bool   `json:"readonly"`
}

// Installment is one payment slice of an agreement. Boleto is nil when the
// archive held no matching document.
type Installment struct {
	AgreementNum string  `json:"agreement_num"`
	Number       int     `json:"number"`
	DueDate      Date    `json:"due_date"`
	Boleto       *Boleto `json:"boleto"`
	Readonly     bool    `json:"readonly"`
	Deleted      bool    `json:"deleted"`
}

// Agreement owns its installments. Payer and creditor are denormalized
// back-references by natural key: the parent may itself not be persisted yet.
type Agreement struct {
	Number       string         `json:"number"`
	PayerCPFCNPJ string         `json:"payer_cpf_cnpj"`
	CreditorName string         `json:"creditor_name"`
	Installments []*Installment `json:"installments"`
	Readonly     bool           `json:"readonly"`
	Deleted      bool           `json:"deleted"`
}

// Payer is the root of a reconciliation subtree.
type Payer struct {
	Name       string       `json:"name"`
	User       User         `json:"user"`
	Phone      string       `json:"phone"`
	Agreements []*Agreement `json:"agreements"`
	Readonly   bool         `json:"readonly"`
	Deleted    bool         `json:"deleted"`
}

// Creditor is referenced by agreements by name but owned by no payer subtree;
// each name appears exactly once per run.
type Creditor struct {
	Name          string `json:"name"`
	ReissueMargin int    `json:"reissue_margin"`
	Readonly      bool   `json:"readonly"`
	Deleted       bool   `json:"deleted"`
}

// Result is the reconciliation graph of one run plus its row-level errors and
// warnings. It is the exact shape staged to results.json and posted back on
// save.
type Result struct {
	Payers    []*Payer    `json:"payers"`
	Creditors []*Creditor `json:"creditors"`
	Errors    []string    `json:"errors"`
	Warnings  []string    `json:"warnings"`
}

func NewResult() *Result {
	return &Result{
		Payers:    []*Payer{},
		Creditors: []*Creditor{},
		Errors:    []string{},
		Warnings:  []string{},
	}
}

// Empty reports whether the run produced no change-set at all, the degenerate
// case where staging is skipped.
func (r *Result) Empty() bool {
	return len(r.Payers) == 0 && len(r.Creditors) == 0
}

// AddPayer inserts the payer into the root list if its document number was not
// seen before, and returns the instance present in the graph afterwards.
// Insertion is idempotent: re-adding the same key is a no-op.
func (r *Result) AddPayer(payer *Payer) *Payer {
	for _, p := range r.Payers {
		if p.User.CPFCNPJ == payer.User.CPFCNPJ {
			return p
		}
	}
	r.Payers = append(r.Payers, payer)
	return payer
}

// AddAgreement inserts the agreement under the payer's subtree, deduplicated
// by agreement number. The payer itself is inserted first if needed, so a
// readonly payer gets pulled into the graph when one of its agreements is new.
func (r *Result) AddAgreement(payer *Payer, agreement *Agreement) *Agreement {
	p := r.AddPayer(payer)
	for _, a := range p.Agreements {
		if a.Number == agreement.Number {
			return a
		}
	}
	p.Agreements = append(p.Agreements, agreement)
	return agreement
}

// AddInstallment inserts the installment under (payer, agreement),
// deduplicated by installment number. Parents are inserted first if needed.
func (r *Result) AddInstallment(payer *Payer, agreement *Agreement, installment *Installment) *Installment {
	a := r.AddAgreement(payer, agreement)
	for _, i := range a.Installments {
		if i.Number == installment.Number {
			return i
		}
	}
	a.Installments = append(a.Installments, installment)
	return installment
}

// AddCreditor inserts the creditor into the flat creditor set, deduplicated by
// name.
func (r *Result) AddCreditor(creditor *Creditor) *Creditor {
	for _, c := range r.Creditors {
		if c.Name == creditor.Name {
			return c
		}
	}
	r.Creditors = append(r.Creditors, creditor)
	return creditor
}
