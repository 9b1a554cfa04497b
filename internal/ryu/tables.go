package ryu

// Bit widths of the multipliers in pow5InvSplit and pow5Split.
const (
	pow5InvBitCount = 59
	pow5BitCount    = 61
)

// pow5InvSplit[i] = floor(2^(bitlen(5^i)-1+pow5InvBitCount) / 5^i) + 1.
var pow5InvSplit = [32]uint64{
	576460752303423489, 461168601842738791,
	368934881474191033, 295147905179352826,
	472236648286964522, 377789318629571618,
	302231454903657294, 483570327845851670,
	386856262276681336, 309485009821345069,
	495176015714152110, 396140812571321688,
	316912650057057351, 507060240091291761,
	405648192073033409, 324518553658426727,
	519229685853482763, 415383748682786211,
	332306998946228969, 531691198313966350,
	425352958651173080, 340282366920938464,
	544451787073501542, 435561429658801234,
	348449143727040987, 557518629963265579,
	446014903970612463, 356811923176489971,
	570899077082383953, 456719261665907162,
	365375409332725730, 292300327466180584,
}

// pow5Split[i] holds the pow5BitCount most significant bits of 5^i.
var pow5Split = [48]uint64{
	1152921504606846976, 1441151880758558720,
	1801439850948198400, 2251799813685248000,
	1407374883553280000, 1759218604441600000,
	2199023255552000000, 1374389534720000000,
	1717986918400000000, 2147483648000000000,
	1342177280000000000, 1677721600000000000,
	2097152000000000000, 1310720000000000000,
	1638400000000000000, 2048000000000000000,
	1280000000000000000, 1600000000000000000,
	2000000000000000000, 1250000000000000000,
	1562500000000000000, 1953125000000000000,
	1220703125000000000, 1525878906250000000,
	1907348632812500000, 1192092895507812500,
	1490116119384765625, 1862645149230957031,
	1164153218269348144, 1455191522836685180,
	1818989403545856475, 2273736754432320594,
	1421085471520200371, 1776356839400250464,
	2220446049250313080, 1387778780781445675,
	1734723475976807094, 2168404344971008868,
	1355252715606880542, 1694065894508600678,
	2117582368135750847, 1323488980084844279,
	1654361225106055349, 2067951531382569187,
	1292469707114105741, 1615587133892632177,
	2019483917365790221, 1262177448353618888,
}
