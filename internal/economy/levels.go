package economy

import (
	"context"

	"github.com/osse101/Clicker_Go/internal/event"
	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/logger"
)

// SetItemLevel moves an item straight to level without charging for it
func (s *service) SetItemLevel(ctx context.Context, itemName string, level item.Level) (*item.View, error) {
	return s.changeLevel(ctx, itemName, event.SourceSet, func(it *item.Item) error {
		return it.SetItemLevel(level)
	})
}

// MaximizeItem moves an item to its level cap without charging for it
func (s *service) MaximizeItem(ctx context.Context, itemName string) (*item.View, error) {
	return s.changeLevel(ctx, itemName, event.SourceMaximize, func(it *item.Item) error {
		it.Maximize()
		return nil
	})
}

func (s *service) changeLevel(ctx context.Context, itemName, source string, fn func(*item.Item) error) (*item.View, error) {
	var (
		oldLevel item.Level
		view     item.View
	)
	err := s.world.Update(itemName, func(it *item.Item) error {
		oldLevel = it.ItemLevel()
		if err := fn(it); err != nil {
			return err
		}
		view = it.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgLevelSet,
		"item", view.Name,
		"source", source,
		"old_level", oldLevel,
		"new_level", view.Level)

	s.publish(ctx, event.NewItemLevelSetEvent(string(s.world.ID()), view.Name, oldLevel, view.Level, source))
	return &view, nil
}
