package domain

import "github.com/shopspring/decimal"

// StoreItem 存放物品
// 新物品附加在倉庫最後；數量檢查在配置新格之前，失敗不會佔用格數
func (a *Account) StoreItem(name string, quantity int) error {
	if name == "" || quantity <= 0 {
		return newError(KindInvalidInput, "invalid item storage request")
	}
	if quantity > MaxItemQuantity {
		return newError(KindLimitExceeded, "quantity %d exceeds storage limit %d",
			quantity, MaxItemQuantity)
	}

	index := a.items.find(name)
	if index < 0 && a.items.full() {
		return newError(KindLimitExceeded, "storage vault is full")
	}

	existing := 0
	if index >= 0 {
		existing = a.items.items[index].Quantity
	}
	if existing+quantity > MaxItemQuantity {
		return newError(KindLimitExceeded, "total quantity would exceed limit %d", MaxItemQuantity)
	}

	if index < 0 {
		a.items.push(name, quantity)
	} else {
		a.items.items[index].Quantity += quantity
	}
	a.addHistory(EntryItemStored, decimal.NewFromInt(int64(quantity)))
	return nil
}

// RetrieveItem 取出物品，數量歸零時移除該格
func (a *Account) RetrieveItem(name string, quantity int) error {
	if name == "" || quantity <= 0 {
		return newError(KindInvalidInput, "invalid retrieval request")
	}

	index := a.items.find(name)
	if index < 0 {
		return newError(KindNotFound, "item '%s' not found in storage", name)
	}

	stored := a.items.items[index].Quantity
	if stored < quantity {
		return newError(KindInsufficientFunds, "only %d of '%s' stored", stored, name)
	}

	a.items.items[index].Quantity -= quantity
	a.addHistory(EntryItemRetrieved, decimal.NewFromInt(int64(-quantity)))

	if a.items.items[index].Quantity == 0 {
		a.items.removeAt(index)
	}
	return nil
}
