package services

import (
	"errors"
	"strings"

	"bankingsystem/internal/models"
)

// In-memory repository fakes. Uniqueness checks mimic the store's unique
// constraints, since the application layer deliberately does not enforce
// them itself.

type fakeClientRepo struct {
	clients map[int]*models.Client
	nextID  int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[int]*models.Client)}
}

func (f *fakeClientRepo) Create(client *models.Client) (int64, error) {
	for _, existing := range f.clients {
		if existing.Email == client.Email {
			return 0, errors.New(`pq: duplicate key value violates unique constraint "clients_email_key"`)
		}
		if existing.Phone == client.Phone {
			return 0, errors.New(`pq: duplicate key value violates unique constraint "clients_phone_key"`)
		}
		if existing.IDCard == client.IDCard {
			return 0, errors.New(`pq: duplicate key value violates unique constraint "clients_id_card_key"`)
		}
	}
	f.nextID++
	cp := *client
	cp.ID = f.nextID
	f.clients[cp.ID] = &cp
	return int64(cp.ID), nil
}

func (f *fakeClientRepo) GetByID(id int) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) GetByEmail(email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) Update(client *models.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return errors.New("client not found")
	}
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeClientRepo) List(limit, offset int) ([]*models.Client, error) {
	var res []*models.Client
	for _, c := range f.clients {
		cp := *c
		res = append(res, &cp)
	}
	return res, nil
}

type fakeCardRepo struct {
	cards map[string]*models.BankCard
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]*models.BankCard)}
}

func (f *fakeCardRepo) Create(card *models.BankCard) error {
	if _, ok := f.cards[card.Number]; ok {
		return errors.New(`pq: duplicate key value violates unique constraint "bank_cards_pkey"`)
	}
	cp := *card
	f.cards[card.Number] = &cp
	return nil
}

func (f *fakeCardRepo) GetByNumber(number string) (*models.BankCard, error) {
	c, ok := f.cards[number]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCardRepo) ListByClient(clientID int) ([]*models.BankCard, error) {
	var res []*models.BankCard
	for _, c := range f.cards {
		if c.ClientID == clientID {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

type fakeTxRepo struct {
	txs       []*models.Transaction
	cards     *fakeCardRepo
	nextID    int
	createErr error
}

func newFakeTxRepo(cards *fakeCardRepo) *fakeTxRepo {
	return &fakeTxRepo{cards: cards}
}

func (f *fakeTxRepo) Create(tx *models.Transaction) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	cp := *tx
	cp.ID = f.nextID
	f.txs = append(f.txs, &cp)
	return int64(cp.ID), nil
}

func (f *fakeTxRepo) ListByClient(clientID int) ([]*models.Transaction, error) {
	owned := make(map[string]bool)
	for _, c := range f.cards.cards {
		if c.ClientID == clientID {
			owned[c.Number] = true
		}
	}
	var res []*models.Transaction
	for _, tx := range f.txs {
		if owned[tx.FromCard] || owned[tx.ToCard] {
			cp := *tx
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (f *fakeTxRepo) ListByCard(number string) ([]*models.Transaction, error) {
	var res []*models.Transaction
	for _, tx := range f.txs {
		if tx.FromCard == number || tx.ToCard == number {
			cp := *tx
			res = append(res, &cp)
		}
	}
	return res, nil
}

type fakeInsuranceRepo struct {
	items     map[int]*models.Insurance
	purchases []*models.InsurancePurchase
	nextID    int
}

func newFakeInsuranceRepo() *fakeInsuranceRepo {
	return &fakeInsuranceRepo{items: make(map[int]*models.Insurance)}
}

func (f *fakeInsuranceRepo) GetByID(id int) (*models.Insurance, error) {
	ins, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ins
	return &cp, nil
}

func (f *fakeInsuranceRepo) List() ([]*models.Insurance, error) {
	var res []*models.Insurance
	for _, ins := range f.items {
		cp := *ins
		res = append(res, &cp)
	}
	return res, nil
}

func (f *fakeInsuranceRepo) CreatePurchase(p *models.InsurancePurchase) (int64, error) {
	f.nextID++
	cp := *p
	cp.ID = f.nextID
	f.purchases = append(f.purchases, &cp)
	return int64(cp.ID), nil
}

func (f *fakeInsuranceRepo) ListPurchasesByClient(clientID int) ([]*models.InsurancePurchase, error) {
	var res []*models.InsurancePurchase
	for _, p := range f.purchases {
		if p.ClientID == clientID {
			cp := *p
			res = append(res, &cp)
		}
	}
	return res, nil
}

type fakeFundRepo struct {
	items       map[int]*models.Fund
	investments []*models.FundInvestment
	nextID      int
}

func newFakeFundRepo() *fakeFundRepo {
	return &fakeFundRepo{items: make(map[int]*models.Fund)}
}

func (f *fakeFundRepo) GetByID(id int) (*models.Fund, error) {
	fund, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *fund
	return &cp, nil
}

func (f *fakeFundRepo) List() ([]*models.Fund, error) {
	var res []*models.Fund
	for _, fund := range f.items {
		cp := *fund
		res = append(res, &cp)
	}
	return res, nil
}

func (f *fakeFundRepo) CreateInvestment(inv *models.FundInvestment) (int64, error) {
	f.nextID++
	cp := *inv
	cp.ID = f.nextID
	f.investments = append(f.investments, &cp)
	return int64(cp.ID), nil
}

func (f *fakeFundRepo) ListInvestmentsByClient(clientID int) ([]*models.FundInvestment, error) {
	var res []*models.FundInvestment
	for _, inv := range f.investments {
		if inv.ClientID == clientID {
			cp := *inv
			res = append(res, &cp)
		}
	}
	return res, nil
}

// isDuplicateErr reports whether a fake create failed on a uniqueness check.
func isDuplicateErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
