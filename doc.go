// Package numdsl implements a small language for numeric computation.
//
// A program is a sequence of statements, each ended by a semicolon:
//
//	set Rate to 0.05;         $$ assignment
//	set Total to 100 * (1 + Rate) ** 2;
//	show Total;               $$ prints the value of Total
//
// Variable names begin with an uppercase letter. Expressions use + - * / and
// ** with the usual precedence, except that ** groups to the left like the
// other operators: 2 ** 3 ** 2 is (2 ** 3) ** 2. The functions sin, cos, tan,
// asin, acos, atan, sqrt, log, exp, ceil, floor, fabs, factorial, and pow are
// available, as are the constants PI and E. Assigning to PI or E hides the
// constant for the rest of the program.
//
// Running a program happens in three stages, Tokenize, Parse, and Interpret,
// which Run chains together. The variable Store belongs to the caller so that
// state can carry across programs, as a Session does.
package numdsl
