package game

// Suggestions served at /prompts.json for the client's random-prompt button.
var promptSuggestions = []string{
	"ghost",
	"pumpkin",
	"black cat",
	"haunted house",
	"witch on a broom",
	"skeleton dance party",
	"vampire at the dentist",
	"werewolf walking a dog",
	"mummy untangling headphones",
	"zombie eating breakfast",
	"spider knitting a web",
	"bat learning to fly",
	"scarecrow scared of crows",
	"candy corn castle",
	"graveyard picnic",
	"frankenstein doing yoga",
}
