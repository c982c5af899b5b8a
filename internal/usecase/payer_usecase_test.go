package usecase

import (
	"context"
	"errors"
	"testing"

	"cobranca_facil/internal/domain/entities"
	mock_interfaces "cobranca_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPayerUseCase_Create(t *testing.T) {
	t.Run("invalid cpf_cnpj", func(t *testing.T) {
		uc := NewPayerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "abc", "Maria", "")
		if !errors.Is(err, ErrInvalidCPFCNPJ) {
			t.Fatalf("expected ErrInvalidCPFCNPJ, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewPayerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "12345678901", "   ", "")
		if !errors.Is(err, ErrInvalidPayerName) {
			t.Fatalf("expected ErrInvalidPayerName, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		uc := NewPayerUseCase(repo, nil)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
			Return(entities.Payer{CPFCNPJ: "12345678901"}, nil)

		_, err := uc.Create(context.Background(), "123.456.789-01", "Maria", "")
		if !errors.Is(err, ErrPayerAlreadyExists) {
			t.Fatalf("expected ErrPayerAlreadyExists, got %v", err)
		}
	})

	t.Run("creates user and payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewPayerUseCase(repo, users)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)
		users.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.CPFCNPJ != "12345678901" || !u.Active {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payer) (entities.Payer, error) {
				if p.CPFCNPJ != "12345678901" || p.Name != "Maria" || p.Phone != "11999990000" {
					t.Fatalf("unexpected payer: %+v", p)
				}
				return p, nil
			})

		got, err := uc.Create(context.Background(), "123.456.789-01", "Maria", "(11) 99999-0000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CPFCNPJ != "12345678901" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("existing user reused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewPayerUseCase(repo, users)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)
		users.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
			Return(entities.User{CPFCNPJ: "12345678901", Active: true}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payer) (entities.Payer, error) { return p, nil })

		if _, err := uc.Create(context.Background(), "12345678901", "Maria", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPayerUseCase_GetByCPFCNPJ(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		uc := NewPayerUseCase(repo, nil)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)

		_, err := uc.GetByCPFCNPJ(context.Background(), "12345678901")
		if !errors.Is(err, ErrPayerNotFound) {
			t.Fatalf("expected ErrPayerNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		uc := NewPayerUseCase(repo, nil)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
			Return(entities.Payer{CPFCNPJ: "12345678901", Name: "Maria"}, nil)

		got, err := uc.GetByCPFCNPJ(context.Background(), "123.456.789-01")
		if err != nil || got.Name != "Maria" {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})
}

func TestPayerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		uc := NewPayerUseCase(repo, nil)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").Return(entities.Payer{}, nil)

		if err := uc.Delete(context.Background(), "12345678901"); !errors.Is(err, ErrPayerNotFound) {
			t.Fatalf("expected ErrPayerNotFound, got %v", err)
		}
	})

	t.Run("deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		uc := NewPayerUseCase(repo, nil)

		repo.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
			Return(entities.Payer{CPFCNPJ: "12345678901"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "12345678901").Return(nil)

		if err := uc.Delete(context.Background(), "12345678901"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
