package components

import "github.com/yohamta/donburi"

type EconomyData struct {
	Gold           int
	Inventory      []string
	QuestActive    bool
	QuestCompleted bool
}

var Economy = donburi.NewComponentType[EconomyData]()
