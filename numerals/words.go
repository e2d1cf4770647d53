package numerals

// Fixed words of the clock phrases.
const (
	TheHour = "הַשָּׁעָה" // prefix "the hour"

	AndOneMinute  = "וְדַקָּה אַחַת"     // singular noun
	AndTwoMinutes = "וּשְׁתֵּי דַּקּוֹת" // dual noun
	Minutes       = "דַּקּוֹת"           // plural noun, follows a conjunctive numeral

	AndFive    = "וָחֲמִשָּׁה"
	AndTen     = "וַעֲשָׂרָה"
	AndQuarter = "וָרֶבַע"
	AndHalf    = "וָחֵצִי"

	// Counted back from the next hour.
	QuarterTo = "רֶבַע"
	TenTo     = "עֲשָׂרָה"
	FiveTo    = "חֲמִשָּׁה"
)

// Surface forms of the preposition "to".
const (
	lamedSheva = "לְ"
	lamedHiriq = "לִ"
)
