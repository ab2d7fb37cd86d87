package entity

import (
	"log"
	"sort"

	"battle-ebiten/ecs/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// EnsureWorldState はターン状態とゲーム状態を持つワールド状態エンティティが存在することを保証します。
// 存在しない場合は作成します。これは通常、セットアップ時に一度だけ呼び出されます。
func EnsureWorldState(world donburi.World, totalFighters int) *donburi.Entry {
	entry, ok := query.NewQuery(filter.Contains(component.WorldStateTag, component.TurnStateComponent)).First(world)
	if ok {
		component.TurnStateComponent.Get(entry).Total = totalFighters
		return entry
	}

	entry = world.Entry(world.Create(component.WorldStateTag, component.TurnStateComponent, component.GameStateComponent))
	component.TurnStateComponent.SetValue(entry, component.TurnState{
		Current: 1,
		Total:   totalFighters,
	})
	component.GameStateComponent.SetValue(entry, component.GameStateData{FSM: component.NewGameStateFSM()})
	return entry
}

// GetTurnState はワールド状態エンティティから TurnState を取得します。
func GetTurnState(world donburi.World) *component.TurnState {
	entry, ok := query.NewQuery(filter.Contains(component.TurnStateComponent)).First(world)
	if !ok {
		log.Panicln("TurnStateComponent がワールドに見つかりません。ワールド状態エンティティで初期化する必要があります。")
	}
	return component.TurnStateComponent.Get(entry)
}

// GetGameState はワールド状態エンティティから GameStateData を取得します。
func GetGameState(world donburi.World) *component.GameStateData {
	entry, ok := query.NewQuery(filter.Contains(component.GameStateComponent)).First(world)
	if !ok {
		log.Panicln("GameStateComponent がワールドに見つかりません。ワールド状態エンティティで初期化する必要があります。")
	}
	return component.GameStateComponent.Get(entry)
}

// FightersInTurnOrder は全ファイターをターン順に並べて返します。
func FightersInTurnOrder(world donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	query.NewQuery(filter.Contains(component.FighterComponent)).Each(world, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.Slice(entries, func(i, j int) bool {
		return component.FighterComponent.Get(entries[i]).TurnOrder < component.FighterComponent.Get(entries[j]).TurnOrder
	})
	return entries
}

// FindPlayer はプレイヤーが操作するファイターを返します。
func FindPlayer(world donburi.World) *donburi.Entry {
	entry, ok := query.NewQuery(filter.Contains(component.FighterComponent, component.PlayerControlComponent)).First(world)
	if !ok {
		log.Panicln("プレイヤーのファイターがワールドに見つかりません。")
	}
	return entry
}

// Enemies はAI制御のファイターをターン順に返します。
func Enemies(world donburi.World) []*donburi.Entry {
	var enemies []*donburi.Entry
	for _, entry := range FightersInTurnOrder(world) {
		if entry.HasComponent(component.AIComponent) {
			enemies = append(enemies, entry)
		}
	}
	return enemies
}

// FindFighter はIDでファイターを検索します。
func FindFighter(world donburi.World, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	query.NewQuery(filter.Contains(component.FighterComponent)).Each(world, func(entry *donburi.Entry) {
		if found == nil && component.FighterComponent.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}

// FloatingTexts は現在表示中の浮遊テキストを返します。
func FloatingTexts(world donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	query.NewQuery(filter.Contains(component.FloatingTextComponent)).Each(world, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}
