package itemstr

import (
	"context"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/metrics"
)

// Count sums the amounts of every slot matching s by material, variant and
// name. The quantity in s is ignored.
func (e *Engine) Count(inv domain.Inventory, s string) int {
	d, ok := e.ParseDescriptor(s)
	if !ok || d.MaterialID <= 0 || inv == nil {
		metrics.RecordItemOperation(OpCount, false)
		return 0
	}

	count := 0
	for i := 0; i < inv.Size(); i++ {
		if slot := inv.Item(i); slotMatches(slot, d) {
			count += slot.Amount
		}
	}
	metrics.RecordItemOperation(OpCount, true)
	return count
}

// Has reports whether inv holds at least the quantity s asks for. For a
// range the smallest value counts.
func (e *Engine) Has(inv domain.Inventory, s string) bool {
	return e.HasAmount(inv, s, 0)
}

// HasAmount is Has with an explicit required amount. n < 1 falls back to
// the quantity in s.
func (e *Engine) HasAmount(inv domain.Inventory, s string, n int) bool {
	d, ok := e.ParseDescriptor(s)
	if !ok || !d.Resolved() || d.Material.IsAir() {
		metrics.RecordItemOperation(OpHas, false)
		return false
	}
	if n < 1 {
		n = d.Quantity.Minimum()
	}
	result := e.Count(inv, s) >= n
	metrics.RecordItemOperation(OpHas, result)
	return result
}

// CountPlayer is Count over a player's inventory
func (e *Engine) CountPlayer(p domain.Player, s string) int {
	return e.Count(p.Inventory(), s)
}

// HasPlayer is Has over a player's inventory
func (e *Engine) HasPlayer(p domain.Player, s string) bool {
	return e.Has(p.Inventory(), s)
}

// Remove takes the quantity in s out of inv and returns how much could not
// be removed. A range is drawn once.
func (e *Engine) Remove(inv domain.Inventory, s string) int {
	return e.RemoveAmount(inv, s, 0)
}

// RemoveAmount removes n matching items, or the quantity in s when n < 1.
// Slots are scanned in order; a slot that is used up is cleared. The return
// value is the shortfall, 0 when everything was removed.
func (e *Engine) RemoveAmount(inv domain.Inventory, s string, n int) int {
	d, ok := e.ParseDescriptor(s)
	left := n
	if left < 1 {
		left = 1
		if ok {
			left = e.rollAtLeastOne(d.Quantity)
		}
	}
	if !ok || d.MaterialID <= 0 || inv == nil {
		metrics.RecordItemOperation(OpRemove, false)
		return left
	}

	for i := 0; i < inv.Size() && left > 0; i++ {
		slot := inv.Item(i)
		if !slotMatches(slot, d) {
			continue
		}
		if slot.Amount <= left {
			left -= slot.Amount
			inv.SetItem(i, nil)
		} else {
			slot.Amount -= left
			inv.SetItem(i, slot)
			left = 0
		}
	}
	metrics.RecordItemOperation(OpRemove, left == 0)
	return left
}

// RemoveFromHand takes the quantity in s from the held slot only. Name,
// material and variant must match and the slot must hold enough, otherwise
// nothing changes and false is returned.
func (e *Engine) RemoveFromHand(p domain.Player, s string) bool {
	ok := e.removeFromHand(p, s)
	metrics.RecordItemOperation(OpRemoveHand, ok)
	return ok
}

func (e *Engine) removeFromHand(p domain.Player, s string) bool {
	inv := p.Inventory()
	held := p.HeldSlot()
	slot := inv.Item(held)
	if slot.IsEmpty() {
		return false
	}

	d, ok := e.ParseDescriptor(s)
	if !ok || d.MaterialID <= 0 || !slotMatches(slot, d) {
		return false
	}

	amount := e.rollAtLeastOne(d.Quantity)
	if slot.Amount < amount {
		return false
	}
	if slot.Amount == amount {
		inv.SetItem(held, nil)
	} else {
		slot.Amount -= amount
		inv.SetItem(held, slot)
	}
	e.publish(context.Background(), event.NewItemsRemovedEvent(p.Name(), s, amount))
	return true
}

// RemoveFromPlayerLater removes s from the player's inventory on the next
// tick of the engine's queue, so an event handler can call it without
// changing the inventory it is still reading. The shortfall is delivered on
// the returned channel. Without a queue the removal runs immediately. If the
// queue is closed nothing is removed and the channel is closed without a
// value.
func (e *Engine) RemoveFromPlayerLater(p domain.Player, s string) <-chan int {
	result := make(chan int, 1)
	task := func() {
		left, requested := e.removeCounted(p.Inventory(), s)
		if removed := requested - left; removed > 0 {
			e.publish(context.Background(), event.NewItemsRemovedEvent(p.Name(), s, removed))
		}
		result <- left
		close(result)
	}

	metrics.RecordItemOperation(OpRemoveLater, true)
	if e.queue == nil {
		task()
		return result
	}
	if !e.queue.Defer(task) {
		e.log.Warn(LogMsgRemovalRefused, "player", p.Name(), "descriptor", s)
		close(result)
		return result
	}
	e.log.Debug(LogMsgRemovalDeferred, "player", p.Name(), "descriptor", s)
	return result
}

// removeCounted is Remove that also reports the amount it set out to remove
func (e *Engine) removeCounted(inv domain.Inventory, s string) (left, requested int) {
	requested = 1
	if d, ok := e.ParseDescriptor(s); ok {
		requested = e.rollAtLeastOne(d.Quantity)
	}
	return e.RemoveAmount(inv, s, requested), requested
}

// GiveOrDrop adds item to the player's inventory and drops whatever does not
// fit at the player's location. It returns the number of items dropped.
func (e *Engine) GiveOrDrop(p domain.Player, item *domain.ItemStack) int {
	if item.IsEmpty() {
		metrics.RecordItemOperation(OpGiveOrDrop, false)
		return 0
	}

	dropped := 0
	loc := p.Location()
	world := p.World()
	for _, left := range p.Inventory().AddItem(item) {
		world.DropItemNaturally(loc, left)
		dropped += left.Amount
	}
	if dropped > 0 {
		e.log.Info(LogMsgItemsDropped, "player", p.Name(), "material", item.Material.Name, "amount", dropped)
		e.publish(context.Background(), event.NewItemsDroppedEvent(p.Name(), item.Material.Name, dropped))
	}
	metrics.RecordItemOperation(OpGiveOrDrop, true)
	return dropped
}
