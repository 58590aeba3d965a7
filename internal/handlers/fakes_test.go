package handlers

import (
	"errors"

	"bankingsystem/internal/models"
)

// Minimal in-memory repositories for end-to-end handler tests.

type stubClientRepo struct {
	clients map[int]*models.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int]*models.Client)}
}

func (f *stubClientRepo) Create(client *models.Client) (int64, error) {
	for _, existing := range f.clients {
		if existing.Email == client.Email || existing.Phone == client.Phone || existing.IDCard == client.IDCard {
			return 0, errors.New(`pq: duplicate key value violates unique constraint "clients_email_key"`)
		}
	}
	f.nextID++
	cp := *client
	cp.ID = f.nextID
	f.clients[cp.ID] = &cp
	return int64(cp.ID), nil
}

func (f *stubClientRepo) GetByID(id int) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *stubClientRepo) GetByEmail(email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *stubClientRepo) Update(client *models.Client) error {
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *stubClientRepo) List(limit, offset int) ([]*models.Client, error) {
	var res []*models.Client
	for _, c := range f.clients {
		cp := *c
		res = append(res, &cp)
	}
	return res, nil
}

type stubCardRepo struct {
	cards map[string]*models.BankCard
}

func newStubCardRepo() *stubCardRepo {
	return &stubCardRepo{cards: make(map[string]*models.BankCard)}
}

func (f *stubCardRepo) Create(card *models.BankCard) error {
	if _, ok := f.cards[card.Number]; ok {
		return errors.New(`pq: duplicate key value violates unique constraint "bank_cards_pkey"`)
	}
	cp := *card
	f.cards[card.Number] = &cp
	return nil
}

func (f *stubCardRepo) GetByNumber(number string) (*models.BankCard, error) {
	c, ok := f.cards[number]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *stubCardRepo) ListByClient(clientID int) ([]*models.BankCard, error) {
	var res []*models.BankCard
	for _, c := range f.cards {
		if c.ClientID == clientID {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

type stubTxRepo struct {
	txs    []*models.Transaction
	nextID int
}

func (f *stubTxRepo) Create(tx *models.Transaction) (int64, error) {
	f.nextID++
	cp := *tx
	cp.ID = f.nextID
	f.txs = append(f.txs, &cp)
	return int64(cp.ID), nil
}

func (f *stubTxRepo) ListByClient(clientID int) ([]*models.Transaction, error) {
	var res []*models.Transaction
	for _, tx := range f.txs {
		cp := *tx
		res = append(res, &cp)
	}
	return res, nil
}

func (f *stubTxRepo) ListByCard(number string) ([]*models.Transaction, error) {
	var res []*models.Transaction
	for _, tx := range f.txs {
		if tx.FromCard == number || tx.ToCard == number {
			cp := *tx
			res = append(res, &cp)
		}
	}
	return res, nil
}
