package floatconv

// leftShiftTable drives decimal leftShift for shifts of 1..60 bits. The high
// 5 bits of an entry give the maximum number of new decimal digits the shift
// can produce; the low 11 bits give the offset of the digits of 5^shift inside
// pow5Digits. The entry after the last shift carries the end offset, so the
// digit-string length of shift n is always table[n+1]&0x7FF - table[n]&0x7FF.
var leftShiftTable = [65]uint16{
	0x0800, 0x0801, 0x0802, 0x0804, 0x1007, 0x100A, 0x100E, 0x1813,
	0x1818, 0x181E, 0x2025, 0x202C, 0x2034, 0x203D, 0x2847, 0x2851,
	0x285C, 0x3068, 0x3074, 0x3081, 0x388F, 0x389D, 0x38AC, 0x38BC,
	0x40CD, 0x40DE, 0x40F0, 0x4903, 0x4916, 0x492A, 0x513F, 0x5154,
	0x516A, 0x5181, 0x5999, 0x59B1, 0x59CA, 0x61E4, 0x61FE, 0x6219,
	0x6A35, 0x6A51, 0x6A6E, 0x6A8C, 0x72AB, 0x72CA, 0x72EA, 0x7B0B,
	0x7B2C, 0x7B4E, 0x8371, 0x8394, 0x83B8, 0x83DD, 0x8C03, 0x8C29,
	0x8C50, 0x9478, 0x94A0, 0x94C9, 0x9CF3, 0x051D, 0x051D, 0x051D,
	0x051D,
}

// pow5Digits is the concatenated decimal digits of 5^0 through 5^60.
const pow5Digits = "" +
	"1525125625312515625781253906251953125976562548828125244140625122" +
	"0703125610351562530517578125152587890625762939453125381469726562" +
	"5190734863281259536743164062547683715820312523841857910156251192" +
	"0928955078125596046447753906252980232238769531251490116119384765" +
	"6257450580596923828125372529029846191406251862645149230957031259" +
	"3132257461547851562546566128730773925781252328306436538696289062" +
	"5116415321826934814453125582076609134674072265625291038304567337" +
	"0361328125145519152283668518066406257275957614183425903320312536" +
	"3797880709171295166015625181898940354585647583007812590949470177" +
	"2928237915039062545474735088646411895751953125227373675443232059" +
	"4787597656251136868377216160297393798828125568434188608080148696" +
	"8994140625284217094304040074348449707031251421085471520200371742" +
	"2485351562571054273576010018587112426757812535527136788005009293" +
	"5562133789062517763568394002504646778106689453125888178419700125" +
	"2323389053344726562544408920985006261616945266723632812522204460" +
	"4925031308084726333618164062511102230246251565404236316680908203" +
	"1255551115123125782702118158340454101562527755575615628913510590" +
	"7917022705078125138777878078144567552953958511352539062569388939" +
	"0390722837764769792556762695312534694469519536141888238489627838" +
	"1347656251734723475976807094411924481391906738281258673617379884" +
	"03547205962240695953369140625"

// slowShiftAmount gives the largest binary shift that cannot move the decimal
// point past the current digit count, indexed by the decimal point itself.
// Shifts for points of 19 and beyond are capped at maxDecimalShift.
var slowShiftAmount = [19]uint{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
}

const maxDecimalShift = 60
