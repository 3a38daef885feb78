package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atria/config"
	"atria/infras/otel/mocks"
	companyMocks "atria/internal/domains/company/mocks"
	"atria/internal/domains/company/model"
	"atria/internal/domains/company/model/dto"
	"atria/internal/domains/company/service"
	"atria/shared/failure"
)

type companyMockSet struct {
	companies *companyMocks.MockCompany
	contacts  *companyMocks.MockContact
}

func newCompanyService(ctrl *gomock.Controller) (service.Company, companyMockSet) {
	set := companyMockSet{
		companies: companyMocks.NewMockCompany(ctrl),
		contacts:  companyMocks.NewMockContact(ctrl),
	}

	svc := service.New(set.companies, set.contacts, nil, &config.Config{}, mocks.NewOtel())

	return svc, set
}

func TestCompanyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCompanyService(ctrl)

	set.companies.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, company model.Company) error {
			assert.NotEmpty(t, company.ID)
			assert.Equal(t, "Acme Dental", company.Name)

			return nil
		})

	err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:     "Acme Dental",
		Industry: "Healthcare",
	})

	assert.NoError(t, err)
}

func TestCompanyService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCompanyService(ctrl)

	set.companies.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Company{}, nil)

	_, err := svc.Get(context.Background(), "a6c1f9a0-0000-4000-8000-00000000dead")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCompanyService_Delete_BlockedByContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCompanyService(ctrl)

	set.companies.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.contacts.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	err := svc.Delete(context.Background(), "a6c1f9a0-0000-4000-8000-000000000001")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestCompanyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCompanyService(ctrl)

	set.companies.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.contacts.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	set.companies.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.Delete(context.Background(), "a6c1f9a0-0000-4000-8000-000000000001")

	assert.NoError(t, err)
}

func TestCompanyService_CreateContact(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set companyMockSet)
		wantErr   bool
	}{
		{
			name: "successful create",
			setupMock: func(set companyMockSet) {
				set.companies.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.contacts.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "company not found",
			setupMock: func(set companyMockSet) {
				set.companies.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newCompanyService(ctrl)
			tt.setupMock(set)

			err := svc.CreateContact(context.Background(), dto.CreateContactRequest{
				FullName: "John Smith",
				Email:    "john@acme.example",
			}, "a6c1f9a0-0000-4000-8000-000000000001")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompanyService_SetPrimaryContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCompanyService(ctrl)

	set.contacts.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.SetPrimaryContact(context.Background(), "a6c1f9a0-0000-4000-8000-000000000001", "b6c1f9a0-0000-4000-8000-00000000dead")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
