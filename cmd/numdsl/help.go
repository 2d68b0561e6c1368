package main

const helpText = `Programs are sequences of statements, each ending with a semicolon.

  set NAME to EXPR;   assign the value of EXPR to NAME
  show NAME;          print the value of NAME
  $$ text             comment to the end of the line

Names start with an uppercase letter and continue with letters and digits.
Numbers are written as 12 or 3.5. There is no unary minus; write 0 - 5.

Operators, loosest first, all grouping to the left:

  + -      addition, subtraction
  * /      multiplication, division
  **       exponentiation (2 ** 3 ** 2 is (2 ** 3) ** 2)

Functions:

  sin cos tan asin acos atan   trigonometry, in radians
  sqrt exp fabs                square root, e to the power, absolute value
  ceil floor                   rounding up and down
  factorial                    factorial of a whole number
  log(x) log(x, base)          natural or other logarithm
  pow(x, y)                    x to the power y

Constants PI and E can be used in expressions. Assigning to them shadows
the constant; show only prints assigned names.

Example:

  set Radius to 10;
  set Area to PI * Radius ** 2;
  show Area;

REPL commands:

  :help          show this text
  :memory        list variables
  :export FILE   write the programs and output of this session to FILE
  :clear         remove all variables
  :quit          leave
`
