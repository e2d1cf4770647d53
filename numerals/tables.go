package numerals

// Hour names use the feminine absolute forms, also after a preposition.
var hours = [13]string{
	1:  "אַחַת",             // one
	2:  "שְׁתַּיִם",         // two
	3:  "שָׁלוֹשׁ",          // three
	4:  "אַרְבַּע",          // four
	5:  "חָמֵשׁ",            // five
	6:  "שֵׁשׁ",             // six
	7:  "שֶׁבַע",            // seven
	8:  "שְׁמוֹנֶה",         // eight
	9:  "תֵּשַׁע",           // nine
	10: "עֶשֶׂר",            // ten
	11: "אַחַת־עֶשְׂרֵה",    // eleven
	12: "שְׁתֵּים־עֶשְׂרֵה", // twelve
}

var ones = [10]string{
	1: "אַחַת",     // one
	2: "שְׁתַּיִם", // two
	3: "שָׁלוֹשׁ",  // three
	4: "אַרְבַּע",  // four
	5: "חָמֵשׁ",    // five
	6: "שֵׁשׁ",     // six
	7: "שֶׁבַע",    // seven
	8: "שְׁמוֹנֶה", // eight
	9: "תֵּשַׁע",   // nine
}

// Conjunctive forms carry the vav, vocalized as the following consonant demands.
var onesConjunctive = [10]string{
	1: "וְאַחַת",     // one
	2: "וּשְׁתַּיִם", // two
	3: "וְשָׁלוֹשׁ",  // three
	4: "וְאַרְבַּע",  // four
	5: "וְחָמֵשׁ",    // five
	6: "וְשֵׁשׁ",     // six
	7: "וְשֶׁבַע",    // seven
	8: "וּשְׁמוֹנֶה", // eight
	9: "וְתֵשַׁע",    // nine
}

// Teens are joined with a maqaf (U+05BE).
var teens = [20]string{
	10: "עֶשֶׂר",             // ten
	11: "אַחַת־עֶשְׂרֵה",     // eleven
	12: "שְׁתֵּים־עֶשְׂרֵה",  // twelve
	13: "שְׁלוֹשׁ־עֶשְׂרֵה",  // thirteen
	14: "אַרְבַּע־עֶשְׂרֵה",  // fourteen
	15: "חֲמֵשׁ־עֶשְׂרֵה",    // fifteen
	16: "שֵׁשׁ־עֶשְׂרֵה",     // sixteen
	17: "שְׁבַע־עֶשְׂרֵה",    // seventeen
	18: "שְׁמוֹנֶה־עֶשְׂרֵה", // eighteen
	19: "תְּשַׁע־עֶשְׂרֵה",   // nineteen
}

var teensConjunctive = [20]string{
	10: "וְעֶשֶׂר",             // ten
	11: "וְאַחַת־עֶשְׂרֵה",     // eleven
	12: "וּשְׁתַּיִם־עֶשְׂרֵה", // twelve
	13: "וּשְׁלוֹשׁ־עֶשְׂרֵה",  // thirteen
	14: "וְאַרְבַּע־עֶשְׂרֵה",  // fourteen
	15: "וְחָמֵשׁ־עֶשְׂרֵה",    // fifteen
	16: "וְשֵׁשׁ־עֶשְׂרֵה",     // sixteen
	17: "וּשְׁבַע־עֶשְׂרֵה",    // seventeen
	18: "וּשְׁמוֹנֶה־עֶשְׂרֵה", // eighteen
	19: "וּתְשַׁע־עֶשְׂרֵה",    // nineteen
}

// Tens are indexed by their value; only 20, 30, 40 and 50 are set.
var tens = [60]string{
	20: "עֶשְׂרִים",   // twenty
	30: "שְׁלוֹשִׁים", // thirty
	40: "אַרְבָּעִים", // forty
	50: "חֲמִשִּׁים",  // fifty
}

var tensConjunctive = [60]string{
	20: "וְעֶשְׂרִים",   // twenty
	30: "וּשְׁלוֹשִׁים", // thirty
	40: "וְאַרְבָּעִים", // forty
	50: "וַחֲמִשִּׁים",  // fifty
}
