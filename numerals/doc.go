/*
Package numerals holds the Hebrew number words needed to read a clock.

Hebrew numerals come in an absolute form, used standalone, and a conjunctive
form, used right after the conjunction vav ("and"). The vav is vocalized
differently depending on the consonant it attaches to, so conjunctive forms
are not derived but listed. Counted minutes and hours are feminine.

Tables cover what a clock needs: ones (1–9), teens (10–19), the tens 20, 30,
40 and 50, and the twelve hour names.

All tables are read-only after package initialization and may be shared
between goroutines without synchronization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package numerals
