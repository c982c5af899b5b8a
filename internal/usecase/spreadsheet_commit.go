package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/domain/spreadsheet"

	"github.com/sirupsen/logrus"
)

// SaveResults commits a reviewed change-set into the entity store.
//
// Walk order: creditors first, then each payer subtree depth-first, so every
// reference a create needs already exists. Nodes marked deleted are skipped
// with their whole subtree; readonly nodes are resolved instead of created.
// Creates are sequential with no rollback: a mid-walk failure surfaces as a
// single error and already-written records remain.
func (u *SpreadsheetUseCase) SaveResults(ctx context.Context, jobID string, result *spreadsheet.Result) error {
	log := u.log.WithField("job_id", jobID)

	for _, raw := range result.Creditors {
		if raw.Deleted {
			continue
		}
		if raw.Readonly {
			existing, err := u.creditors.GetByName(ctx, raw.Name)
			if err != nil {
				return fmt.Errorf("loading creditor %s: %w", raw.Name, err)
			}
			if existing.Name == "" {
				return fmt.Errorf("creditor %s not found", raw.Name)
			}
			continue
		}

		log.WithField("creditor", raw.Name).Debug("creating creditor")
		now := time.Now().UTC()
		_, err := u.creditors.Create(ctx, entities.Creditor{
			Name:          raw.Name,
			ReissueMargin: raw.ReissueMargin,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("creating creditor %s: %w", raw.Name, err)
		}
	}

	for _, raw := range result.Payers {
		if raw.Deleted {
			continue
		}

		var saved entities.Payer
		if raw.Readonly {
			log.WithField("cpf_cnpj", raw.User.CPFCNPJ).Debug("resolving existing payer")
			existing, err := u.payers.GetByCPFCNPJ(ctx, raw.User.CPFCNPJ)
			if err != nil {
				return fmt.Errorf("loading payer %s: %w", raw.User.CPFCNPJ, err)
			}
			if existing.CPFCNPJ == "" {
				return fmt.Errorf("payer %s not found", raw.User.CPFCNPJ)
			}
			saved = existing
		} else {
			log.WithField("cpf_cnpj", raw.User.CPFCNPJ).Debug("creating payer")
			created, err := u.createPayer(ctx, raw)
			if err != nil {
				return err
			}
			saved = created
		}

		if err := u.saveAgreements(ctx, log, saved, raw.Agreements); err != nil {
			return err
		}
	}

	return nil
}

// createPayer persists the payer's login user and the payer record. The user
// may already exist from an earlier partial commit; it is only created when
// missing.
func (u *SpreadsheetUseCase) createPayer(ctx context.Context, raw *spreadsheet.Payer) (entities.Payer, error) {
	now := time.Now().UTC()

	user, err := u.users.GetByCPFCNPJ(ctx, raw.User.CPFCNPJ)
	if err != nil {
		return entities.Payer{}, fmt.Errorf("loading user %s: %w", raw.User.CPFCNPJ, err)
	}
	if user.CPFCNPJ == "" {
		if _, err := u.users.Create(ctx, entities.User{
			CPFCNPJ:   raw.User.CPFCNPJ,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return entities.Payer{}, fmt.Errorf("creating user %s: %w", raw.User.CPFCNPJ, err)
		}
	}

	created, err := u.payers.Create(ctx, entities.Payer{
		CPFCNPJ:   raw.User.CPFCNPJ,
		Name:      raw.Name,
		Phone:     raw.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Payer{}, fmt.Errorf("creating payer %s: %w", raw.User.CPFCNPJ, err)
	}
	return created, nil
}

func (u *SpreadsheetUseCase) saveAgreements(ctx context.Context, log *logrus.Entry, payer entities.Payer, rawAgreements []*spreadsheet.Agreement) error {
	for _, raw := range rawAgreements {
		if raw.Deleted {
			continue
		}

		var saved entities.Agreement
		if raw.Readonly {
			existing, err := u.agreements.GetByNumber(ctx, raw.Number)
			if err != nil {
				return fmt.Errorf("loading agreement %s: %w", raw.Number, err)
			}
			if existing.Number == "" {
				return fmt.Errorf("agreement %s not found", raw.Number)
			}
			saved = existing
		} else {
			log.WithFields(logrus.Fields{"agreement": raw.Number, "cpf_cnpj": payer.CPFCNPJ}).Debug("creating agreement")
			now := time.Now().UTC()
			created, err := u.agreements.Create(ctx, entities.Agreement{
				Number:       raw.Number,
				PayerCPFCNPJ: payer.CPFCNPJ,
				CreditorName: raw.CreditorName,
				Status:       entities.AgreementStatusOpen,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
			if err != nil {
				return fmt.Errorf("creating agreement %s: %w", raw.Number, err)
			}
			saved = created
		}

		if err := u.saveInstallments(ctx, log, saved, raw.Installments); err != nil {
			return err
		}
	}
	return nil
}

func (u *SpreadsheetUseCase) saveInstallments(ctx context.Context, log *logrus.Entry, agreement entities.Agreement, rawInstallments []*spreadsheet.Installment) error {
	for _, raw := range rawInstallments {
		if raw.Deleted {
			continue
		}

		var saved entities.Installment
		if raw.Readonly {
			existing, err := u.installments.GetByAgreementAndNumber(ctx, agreement.Number, raw.Number)
			if err != nil {
				return fmt.Errorf("loading installment %d of agreement %s: %w", raw.Number, agreement.Number, err)
			}
			if existing.AgreementNumber == "" {
				return fmt.Errorf("installment %d of agreement %s not found", raw.Number, agreement.Number)
			}
			saved = existing
		} else {
			log.WithFields(logrus.Fields{"agreement": agreement.Number, "installment": raw.Number}).Debug("creating installment")
			now := time.Now().UTC()
			created, err := u.installments.Create(ctx, entities.Installment{
				AgreementNumber: agreement.Number,
				Number:          raw.Number,
				DueDate:         raw.DueDate.Time,
				CreatedAt:       now,
				UpdatedAt:       now,
			})
			if err != nil {
				return fmt.Errorf("creating installment %d of agreement %s: %w", raw.Number, agreement.Number, err)
			}
			saved = created
		}

		// The boleto is written whenever the staged node carries one, even
		// under a readonly installment: a pre-existing installment can gain a
		// newly matched document.
		if raw.Boleto != nil {
			if err := u.saveBoleto(ctx, log, saved, raw.Boleto); err != nil {
				return err
			}
		}
	}
	return nil
}

// saveBoleto copies the PDF bytes from the staged extraction path into the
// permanent media area and persists the boleto record as pending.
func (u *SpreadsheetUseCase) saveBoleto(ctx context.Context, log *logrus.Entry, installment entities.Installment, raw *spreadsheet.Boleto) error {
	data, err := u.storage.ReadFile(ctx, raw.Path)
	if err != nil {
		return fmt.Errorf("reading boleto file %s: %w", raw.Path, err)
	}

	storedPath, err := u.storage.SaveBoletoPDF(ctx, filepath.Base(raw.Path), data)
	if err != nil {
		return fmt.Errorf("storing boleto pdf %s: %w", raw.Path, err)
	}

	log.WithFields(logrus.Fields{"agreement": installment.AgreementNumber, "installment": installment.Number}).
		Debug("creating boleto")
	now := time.Now().UTC()
	_, err = u.boletos.Create(ctx, entities.Boleto{
		AgreementNumber:   installment.AgreementNumber,
		InstallmentNumber: installment.Number,
		PDFPath:           storedPath,
		Status:            entities.BoletoStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return fmt.Errorf("creating boleto for installment %d of agreement %s: %w", installment.Number, installment.AgreementNumber, err)
	}
	return nil
}
