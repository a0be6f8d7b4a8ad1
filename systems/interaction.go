package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hintLabels are the prompts for one input device.
type hintLabels struct {
	talk, shop, portal string
}

var hints = map[components.InputMethod]hintLabels{
	components.InputKeyboard: {talk: "[E] Talk", shop: "[E] Shop", portal: "[W] Enter"},
	components.InputGamepad:  {talk: "[Y] Talk", shop: "[Y] Shop", portal: "[Up] Enter"},
}

const (
	msgQuestStart    = "Defeat the monster and come back!"
	msgQuestPending  = "You have not finished the quest yet."
	msgQuestReward   = "Quest complete! Reward %dG"
	msgQuestComplete = "Quest complete! Return to the NPC."
	msgNoGold        = "Not enough gold!"
	msgPurchased     = "%s purchased!"
)

// near reports whether the player is within r of an anchor on both axes.
func near(p *components.PlayerData, a *components.AnchorData, r float64) bool {
	return math.Abs(p.X-a.X) < r && math.Abs(p.Y-a.Y) < r
}

func firstAnchor(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) (*components.AnchorData, bool) {
	entry, ok := tag.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Anchor.Get(entry), true
}

func nearNPC(ecs *ecs.ECS, p *components.PlayerData) (*components.AnchorData, bool) {
	a, ok := firstAnchor(ecs, tags.NPC)
	return a, ok && near(p, a, cfg.Interaction.NPCRange)
}

func nearShop(ecs *ecs.ECS, p *components.PlayerData) (*components.AnchorData, bool) {
	a, ok := firstAnchor(ecs, tags.Shop)
	return a, ok && near(p, a, cfg.Interaction.ShopRange)
}

// updateHints recomputes the prompts, labelled for the device last used.
// Positions are logical; the renderer adds the on-screen offsets.
func updateHints(ecs *ecs.ECS) {
	entry, ok := levelEntry(ecs)
	player, ok2 := getPlayer(ecs)
	if !ok || !ok2 {
		return
	}
	hint := components.Hint.Get(entry)
	p := components.Player.Get(player)

	labels := hints[getOrCreateInput(ecs).LastInputMethod]

	*hint = components.HintData{}
	if a, ok := nearNPC(ecs, p); ok {
		hint.Text, hint.X, hint.Y = labels.talk, a.X, a.Y
	} else if a, ok := nearShop(ecs, p); ok {
		hint.Text, hint.X, hint.Y = labels.shop, a.X, a.Y
	}

	if _, _, ok := portalTarget(ecs); ok {
		hint.Portal = labels.portal
		hint.PortalX, hint.PortalY = p.X, p.Y
	}
}

// Interact talks to the NPC or, failing that, opens the shop. It returns
// false when nothing is in range.
func Interact(ecs *ecs.ECS) bool {
	player, ok := getPlayer(ecs)
	if !ok {
		return false
	}
	p := components.Player.Get(player)
	econ := components.Economy.Get(player)

	if _, ok := nearNPC(ecs, p); ok {
		switch {
		case !econ.QuestActive && !econ.QuestCompleted:
			econ.QuestActive = true
			openDialog(ecs, components.DialogMessage, "Quest", msgQuestStart)
			log.Printf("[quest] started")
		case econ.QuestActive && !econ.QuestCompleted:
			openDialog(ecs, components.DialogMessage, "NPC", msgQuestPending)
		default:
			econ.Gold += cfg.Economy.QuestReward
			econ.QuestCompleted = false
			openDialog(ecs, components.DialogMessage, "NPC", fmt.Sprintf(msgQuestReward, cfg.Economy.QuestReward))
			log.Printf("[quest] rewarded %dG, gold %d", cfg.Economy.QuestReward, econ.Gold)
		}
		return true
	}

	if _, ok := nearShop(ecs, p); ok {
		openDialog(ecs, components.DialogShop, "Shop", "")
		return true
	}
	return false
}

// Purchase buys item for the player. The message is shown in the shop
// window either way.
func Purchase(ecs *ecs.ECS, item cfg.ShopItem) (string, bool) {
	player, ok := getPlayer(ecs)
	if !ok {
		return "", false
	}
	econ := components.Economy.Get(player)
	if econ.Gold < item.Price {
		return msgNoGold, false
	}
	econ.Gold -= item.Price
	econ.Inventory = append(econ.Inventory, item.Name)
	log.Printf("[shop] bought %s for %dG, gold %d", item.Name, item.Price, econ.Gold)
	return fmt.Sprintf(msgPurchased, item.Name), true
}

// CompleteQuest marks the active quest done. The reward is collected from
// the NPC.
func CompleteQuest(ecs *ecs.ECS) bool {
	player, ok := getPlayer(ecs)
	if !ok {
		return false
	}
	econ := components.Economy.Get(player)
	if !econ.QuestActive {
		return false
	}
	econ.QuestActive = false
	econ.QuestCompleted = true
	if !DialogActive(ecs) {
		openDialog(ecs, components.DialogMessage, "Quest", msgQuestComplete)
	}
	log.Printf("[quest] completed")
	return true
}

// Gold is the player's current gold, 0 without a player.
func Gold(ecs *ecs.ECS) int {
	if player, ok := getPlayer(ecs); ok {
		return components.Economy.Get(player).Gold
	}
	return 0
}
