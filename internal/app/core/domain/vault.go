package domain

// ItemStack 倉庫中的一種物品
type ItemStack struct {
	Name     string
	Quantity int
}

// vault 有序的物品倉庫，移除時保留其餘物品的相對順序
type vault struct {
	items []ItemStack
}

// find 以名稱完全比對 (區分大小寫)，找不到回傳 -1
func (v *vault) find(name string) int {
	for i := range v.items {
		if v.items[i].Name == name {
			return i
		}
	}
	return -1
}

func (v *vault) full() bool {
	return len(v.items) >= MaxItems
}

func (v *vault) push(name string, quantity int) {
	v.items = append(v.items, ItemStack{Name: name, Quantity: quantity})
}

// removeAt 移除指定位置並把後面的往前移
func (v *vault) removeAt(index int) {
	copy(v.items[index:], v.items[index+1:])
	v.items[len(v.items)-1] = ItemStack{}
	v.items = v.items[:len(v.items)-1]
}

func (v *vault) list() []ItemStack {
	out := make([]ItemStack, len(v.items))
	copy(out, v.items)
	return out
}

func (v *vault) len() int {
	return len(v.items)
}

func (v *vault) reset() {
	v.items = nil
}
