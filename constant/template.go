package constant

// Usage is the walkthrough shown under the interactive form and in the mini prompt.
var Usage = []string{
	"Select the category of conversion (Length, Weight, Temperature, or Time)",
	"Enter the value you want to convert",
	"Select the unit to convert from",
	"Select the unit to convert to",
	"Press Convert",
}
