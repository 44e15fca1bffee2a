package isa

// rv64 lists the 32-bit encodings: base integer, M, A, F, D, Q, H, V,
// Zb* and Zfh. Names use the dotted assembler spelling.
var rv64 = []Pattern{
	{Name: "ecall", Mask: 0xffffffff, Match: 0x00000073, Layout: None},
	{Name: "ebreak", Mask: 0xffffffff, Match: 0x00100073, Layout: None},
	{Name: "uret", Mask: 0xffffffff, Match: 0x00200073, Layout: None},
	{Name: "sret", Mask: 0xffffffff, Match: 0x10200073, Layout: None},
	{Name: "mret", Mask: 0xffffffff, Match: 0x30200073, Layout: None},
	{Name: "wfi", Mask: 0xffffffff, Match: 0x10500073, Layout: None},
	{Name: "sfence.vma", Mask: 0xfe007fff, Match: 0x12000073, Layout: RegPair},
	{Name: "sfence.vm", Mask: 0xfff07fff, Match: 0x10400073, Layout: RegPair},
	{Name: "lui", Mask: 0x0000007f, Match: 0x00000037, Layout: Upper},
	{Name: "auipc", Mask: 0x0000007f, Match: 0x00000017, Layout: Upper},
	{Name: "jal", Mask: 0x0000007f, Match: 0x0000006f, Layout: Jal},
	{Name: "jalr", Mask: 0x0000707f, Match: 0x00000067, Layout: I},
	{Name: "beq", Mask: 0x0000707f, Match: 0x00000063, Layout: Branch},
	{Name: "bne", Mask: 0x0000707f, Match: 0x00001063, Layout: Branch},
	{Name: "blt", Mask: 0x0000707f, Match: 0x00004063, Layout: Branch},
	{Name: "bge", Mask: 0x0000707f, Match: 0x00005063, Layout: Branch},
	{Name: "bltu", Mask: 0x0000707f, Match: 0x00006063, Layout: Branch},
	{Name: "bgeu", Mask: 0x0000707f, Match: 0x00007063, Layout: Branch},
	{Name: "lb", Mask: 0x0000707f, Match: 0x00000003, Layout: Load},
	{Name: "lh", Mask: 0x0000707f, Match: 0x00001003, Layout: Load},
	{Name: "lw", Mask: 0x0000707f, Match: 0x00002003, Layout: Load},
	{Name: "lbu", Mask: 0x0000707f, Match: 0x00004003, Layout: Load},
	{Name: "lhu", Mask: 0x0000707f, Match: 0x00005003, Layout: Load},
	{Name: "sb", Mask: 0x0000707f, Match: 0x00000023, Layout: Store},
	{Name: "sh", Mask: 0x0000707f, Match: 0x00001023, Layout: Store},
	{Name: "sw", Mask: 0x0000707f, Match: 0x00002023, Layout: Store},
	{Name: "addi", Mask: 0x0000707f, Match: 0x00000013, Layout: I},
	{Name: "slti", Mask: 0x0000707f, Match: 0x00002013, Layout: I},
	{Name: "sltiu", Mask: 0x0000707f, Match: 0x00003013, Layout: I},
	{Name: "xori", Mask: 0x0000707f, Match: 0x00004013, Layout: I},
	{Name: "ori", Mask: 0x0000707f, Match: 0x00006013, Layout: I},
	{Name: "andi", Mask: 0x0000707f, Match: 0x00007013, Layout: I},
	{Name: "slli", Mask: 0xf800707f, Match: 0x00001013, Layout: Shift6},
	{Name: "srli", Mask: 0xf800707f, Match: 0x00005013, Layout: Shift6},
	{Name: "srai", Mask: 0xf800707f, Match: 0x40005013, Layout: Shift6},
	{Name: "add", Mask: 0xfe00707f, Match: 0x00000033, Layout: R},
	{Name: "sub", Mask: 0xfe00707f, Match: 0x40000033, Layout: R},
	{Name: "sll", Mask: 0xfe00707f, Match: 0x00001033, Layout: R},
	{Name: "slt", Mask: 0xfe00707f, Match: 0x00002033, Layout: R},
	{Name: "sltu", Mask: 0xfe00707f, Match: 0x00003033, Layout: R},
	{Name: "xor", Mask: 0xfe00707f, Match: 0x00004033, Layout: R},
	{Name: "srl", Mask: 0xfe00707f, Match: 0x00005033, Layout: R},
	{Name: "sra", Mask: 0xfe00707f, Match: 0x40005033, Layout: R},
	{Name: "or", Mask: 0xfe00707f, Match: 0x00006033, Layout: R},
	{Name: "and", Mask: 0xfe00707f, Match: 0x00007033, Layout: R},
	{Name: "fence", Mask: 0x0000707f, Match: 0x0000000f, Layout: None},
	{Name: "fence.i", Mask: 0x0000707f, Match: 0x0000100f, Layout: None},
	{Name: "csrrw", Mask: 0x0000707f, Match: 0x00001073, Layout: I},
	{Name: "csrrs", Mask: 0x0000707f, Match: 0x00002073, Layout: I},
	{Name: "csrrc", Mask: 0x0000707f, Match: 0x00003073, Layout: I},
	{Name: "csrrwi", Mask: 0x0000707f, Match: 0x00005073, Layout: I},
	{Name: "csrrsi", Mask: 0x0000707f, Match: 0x00006073, Layout: I},
	{Name: "csrrci", Mask: 0x0000707f, Match: 0x00007073, Layout: I},
	{Name: "lwu", Mask: 0x0000707f, Match: 0x00006003, Layout: Load},
	{Name: "ld", Mask: 0x0000707f, Match: 0x00003003, Layout: Load},
	{Name: "sd", Mask: 0x0000707f, Match: 0x00003023, Layout: Store},
	{Name: "addiw", Mask: 0x0000707f, Match: 0x0000001b, Layout: I},
	{Name: "slliw", Mask: 0xfe00707f, Match: 0x0000101b, Layout: Shift5},
	{Name: "srliw", Mask: 0xfe00707f, Match: 0x0000501b, Layout: Shift5},
	{Name: "sraiw", Mask: 0xfe00707f, Match: 0x4000501b, Layout: Shift5},
	{Name: "addw", Mask: 0xfe00707f, Match: 0x0000003b, Layout: R},
	{Name: "subw", Mask: 0xfe00707f, Match: 0x4000003b, Layout: R},
	{Name: "sllw", Mask: 0xfe00707f, Match: 0x0000103b, Layout: R},
	{Name: "srlw", Mask: 0xfe00707f, Match: 0x0000503b, Layout: R},
	{Name: "sraw", Mask: 0xfe00707f, Match: 0x4000503b, Layout: R},
	{Name: "ldu", Mask: 0x0000707f, Match: 0x00007003, Layout: Load},
	{Name: "lq", Mask: 0x0000707f, Match: 0x0000200f, Layout: Load},
	{Name: "sq", Mask: 0x0000707f, Match: 0x00004023, Layout: Store},
	{Name: "addid", Mask: 0x0000707f, Match: 0x0000005b, Layout: I},
	{Name: "sllid", Mask: 0xfc00707f, Match: 0x0000105b, Layout: Shift6},
	{Name: "srlid", Mask: 0xfc00707f, Match: 0x0000505b, Layout: Shift6},
	{Name: "sraid", Mask: 0xfc00707f, Match: 0x4000505b, Layout: Shift6},
	{Name: "addd", Mask: 0xfe00707f, Match: 0x0000007b, Layout: R},
	{Name: "subd", Mask: 0xfe00707f, Match: 0x4000007b, Layout: R},
	{Name: "slld", Mask: 0xfe00707f, Match: 0x0000107b, Layout: R},
	{Name: "srld", Mask: 0xfe00707f, Match: 0x0000507b, Layout: R},
	{Name: "srad", Mask: 0xfe00707f, Match: 0x4000507b, Layout: R},
	{Name: "mul", Mask: 0xfe00707f, Match: 0x02000033, Layout: R},
	{Name: "mulh", Mask: 0xfe00707f, Match: 0x02001033, Layout: R},
	{Name: "mulhsu", Mask: 0xfe00707f, Match: 0x02002033, Layout: R},
	{Name: "mulhu", Mask: 0xfe00707f, Match: 0x02003033, Layout: R},
	{Name: "div", Mask: 0xfe00707f, Match: 0x02004033, Layout: R},
	{Name: "divu", Mask: 0xfe00707f, Match: 0x02005033, Layout: R},
	{Name: "rem", Mask: 0xfe00707f, Match: 0x02006033, Layout: R},
	{Name: "remu", Mask: 0xfe00707f, Match: 0x02007033, Layout: R},
	{Name: "mulw", Mask: 0xfe00707f, Match: 0x0200003b, Layout: R},
	{Name: "divw", Mask: 0xfe00707f, Match: 0x0200403b, Layout: R},
	{Name: "divuw", Mask: 0xfe00707f, Match: 0x0200503b, Layout: R},
	{Name: "remw", Mask: 0xfe00707f, Match: 0x0200603b, Layout: R},
	{Name: "remuw", Mask: 0xfe00707f, Match: 0x0200703b, Layout: R},
	{Name: "muld", Mask: 0xfe00707f, Match: 0x0200007b, Layout: R},
	{Name: "divd", Mask: 0xfe00707f, Match: 0x0200407b, Layout: R},
	{Name: "divud", Mask: 0xfe00707f, Match: 0x0200507b, Layout: R},
	{Name: "remd", Mask: 0xfe00707f, Match: 0x0200607b, Layout: R},
	{Name: "remud", Mask: 0xfe00707f, Match: 0x0200707b, Layout: R},
	{Name: "lr.w", Mask: 0xf9f0707f, Match: 0x1000202f, Layout: I},
	{Name: "sc.w", Mask: 0xf800707f, Match: 0x1800202f, Layout: R},
	{Name: "amoswap.w", Mask: 0xf800707f, Match: 0x0800202f, Layout: R},
	{Name: "amoadd.w", Mask: 0xf800707f, Match: 0x0000202f, Layout: R},
	{Name: "amoxor.w", Mask: 0xf800707f, Match: 0x2000202f, Layout: R},
	{Name: "amoand.w", Mask: 0xf800707f, Match: 0x6000202f, Layout: R},
	{Name: "amoor.w", Mask: 0xf800707f, Match: 0x4000202f, Layout: R},
	{Name: "amomin.w", Mask: 0xf800707f, Match: 0x8000202f, Layout: R},
	{Name: "amomax.w", Mask: 0xf800707f, Match: 0xa000202f, Layout: R},
	{Name: "amominu.w", Mask: 0xf800707f, Match: 0xc000202f, Layout: R},
	{Name: "amomaxu.w", Mask: 0xf800707f, Match: 0xe000202f, Layout: R},
	{Name: "lr.d", Mask: 0xf9f0707f, Match: 0x1000302f, Layout: I},
	{Name: "sc.d", Mask: 0xf800707f, Match: 0x1800302f, Layout: R},
	{Name: "amoswap.d", Mask: 0xf800707f, Match: 0x0800302f, Layout: R},
	{Name: "amoadd.d", Mask: 0xf800707f, Match: 0x0000302f, Layout: R},
	{Name: "amoxor.d", Mask: 0xf800707f, Match: 0x2000302f, Layout: R},
	{Name: "amoand.d", Mask: 0xf800707f, Match: 0x6000302f, Layout: R},
	{Name: "amoor.d", Mask: 0xf800707f, Match: 0x4000302f, Layout: R},
	{Name: "amomin.d", Mask: 0xf800707f, Match: 0x8000302f, Layout: R},
	{Name: "amomax.d", Mask: 0xf800707f, Match: 0xa000302f, Layout: R},
	{Name: "amominu.d", Mask: 0xf800707f, Match: 0xc000302f, Layout: R},
	{Name: "amomaxu.d", Mask: 0xf800707f, Match: 0xe000302f, Layout: R},
	{Name: "flw", Mask: 0x0000707f, Match: 0x00002007, Layout: Load},
	{Name: "fsw", Mask: 0x0000707f, Match: 0x00002027, Layout: Store},
	{Name: "fmadd.s", Mask: 0x0600007f, Match: 0x00000043, Layout: R},
	{Name: "fmsub.s", Mask: 0x0600007f, Match: 0x00000047, Layout: R},
	{Name: "fnmsub.s", Mask: 0x0600007f, Match: 0x0000004b, Layout: R},
	{Name: "fnmadd.s", Mask: 0x0600007f, Match: 0x0000004f, Layout: R},
	{Name: "fadd.s", Mask: 0xfe00007f, Match: 0x00000053, Layout: R},
	{Name: "fsub.s", Mask: 0xfe00007f, Match: 0x08000053, Layout: R},
	{Name: "fmul.s", Mask: 0xfe00007f, Match: 0x10000053, Layout: R},
	{Name: "fdiv.s", Mask: 0xfe00007f, Match: 0x18000053, Layout: R},
	{Name: "fsqrt.s", Mask: 0xfff0007f, Match: 0x58000053, Layout: I},
	{Name: "fsgnj.s", Mask: 0xfe00707f, Match: 0x20000053, Layout: R},
	{Name: "fsgnjn.s", Mask: 0xfe00707f, Match: 0x20001053, Layout: R},
	{Name: "fsgnjx.s", Mask: 0xfe00707f, Match: 0x20002053, Layout: R},
	{Name: "fmin.s", Mask: 0xfe00707f, Match: 0x28000053, Layout: R},
	{Name: "fmax.s", Mask: 0xfe00707f, Match: 0x28001053, Layout: R},
	{Name: "fcvt.w.s", Mask: 0xfff0007f, Match: 0xc0000053, Layout: I},
	{Name: "fcvt.wu.s", Mask: 0xfff0007f, Match: 0xc0100053, Layout: I},
	{Name: "fmv.x.w", Mask: 0xfff0707f, Match: 0xe0000053, Layout: I},
	{Name: "feq.s", Mask: 0xfe00707f, Match: 0xa0002053, Layout: R},
	{Name: "flt.s", Mask: 0xfe00707f, Match: 0xa0001053, Layout: R},
	{Name: "fle.s", Mask: 0xfe00707f, Match: 0xa0000053, Layout: R},
	{Name: "fclass.s", Mask: 0xfff0707f, Match: 0xe0001053, Layout: I},
	{Name: "fcvt.s.w", Mask: 0xfff0007f, Match: 0xd0000053, Layout: I},
	{Name: "fcvt.s.wu", Mask: 0xfff0007f, Match: 0xd0100053, Layout: I},
	{Name: "fmv.w.x", Mask: 0xfff0707f, Match: 0xf0000053, Layout: I},
	{Name: "fcvt.l.s", Mask: 0xfff0007f, Match: 0xc0200053, Layout: I},
	{Name: "fcvt.lu.s", Mask: 0xfff0007f, Match: 0xc0300053, Layout: I},
	{Name: "fcvt.s.l", Mask: 0xfff0007f, Match: 0xd0200053, Layout: I},
	{Name: "fcvt.s.lu", Mask: 0xfff0007f, Match: 0xd0300053, Layout: I},
	{Name: "fld", Mask: 0x0000707f, Match: 0x00003007, Layout: Load},
	{Name: "fsd", Mask: 0x0000707f, Match: 0x00003027, Layout: Store},
	{Name: "fmadd.d", Mask: 0x0600007f, Match: 0x02000043, Layout: R},
	{Name: "fmsub.d", Mask: 0x0600007f, Match: 0x02000047, Layout: R},
	{Name: "fnmsub.d", Mask: 0x0600007f, Match: 0x0200004b, Layout: R},
	{Name: "fnmadd.d", Mask: 0x0600007f, Match: 0x0200004f, Layout: R},
	{Name: "fadd.d", Mask: 0xfe00007f, Match: 0x02000053, Layout: R},
	{Name: "fsub.d", Mask: 0xfe00007f, Match: 0x0a000053, Layout: R},
	{Name: "fmul.d", Mask: 0xfe00007f, Match: 0x12000053, Layout: R},
	{Name: "fdiv.d", Mask: 0xfe00007f, Match: 0x1a000053, Layout: R},
	{Name: "fsqrt.d", Mask: 0xfff0007f, Match: 0x5a000053, Layout: I},
	{Name: "fsgnj.d", Mask: 0xfe00707f, Match: 0x22000053, Layout: R},
	{Name: "fsgnjn.d", Mask: 0xfe00707f, Match: 0x22001053, Layout: R},
	{Name: "fsgnjx.d", Mask: 0xfe00707f, Match: 0x22002053, Layout: R},
	{Name: "fmin.d", Mask: 0xfe00707f, Match: 0x2a000053, Layout: R},
	{Name: "fmax.d", Mask: 0xfe00707f, Match: 0x2a001053, Layout: R},
	{Name: "fcvt.s.d", Mask: 0xfff0007f, Match: 0x40100053, Layout: I},
	{Name: "fcvt.d.s", Mask: 0xfff0007f, Match: 0x42000053, Layout: I},
	{Name: "feq.d", Mask: 0xfe00707f, Match: 0xa2002053, Layout: R},
	{Name: "flt.d", Mask: 0xfe00707f, Match: 0xa2001053, Layout: R},
	{Name: "fle.d", Mask: 0xfe00707f, Match: 0xa2000053, Layout: R},
	{Name: "fclass.d", Mask: 0xfff0707f, Match: 0xe2001053, Layout: I},
	{Name: "fcvt.w.d", Mask: 0xfff0007f, Match: 0xc2000053, Layout: I},
	{Name: "fcvt.wu.d", Mask: 0xfff0007f, Match: 0xc2100053, Layout: I},
	{Name: "fcvt.d.w", Mask: 0xfff0007f, Match: 0xd2000053, Layout: I},
	{Name: "fcvt.d.wu", Mask: 0xfff0007f, Match: 0xd2100053, Layout: I},
	{Name: "fcvt.l.d", Mask: 0xfff0007f, Match: 0xc2200053, Layout: I},
	{Name: "fcvt.lu.d", Mask: 0xfff0007f, Match: 0xc2300053, Layout: I},
	{Name: "fmv.x.d", Mask: 0xfff0707f, Match: 0xe2000053, Layout: I},
	{Name: "fcvt.d.l", Mask: 0xfff0007f, Match: 0xd2200053, Layout: I},
	{Name: "fcvt.d.lu", Mask: 0xfff0007f, Match: 0xd2300053, Layout: I},
	{Name: "fmv.d.x", Mask: 0xfff0707f, Match: 0xf2000053, Layout: I},
	{Name: "hlv.b", Mask: 0xfff0707f, Match: 0x60004073, Layout: I},
	{Name: "hlv.bu", Mask: 0xfff0707f, Match: 0x60104073, Layout: I},
	{Name: "hlv.h", Mask: 0xfff0707f, Match: 0x64004073, Layout: I},
	{Name: "hlv.hu", Mask: 0xfff0707f, Match: 0x64104073, Layout: I},
	{Name: "hlvx.hu", Mask: 0xfff0707f, Match: 0x64304073, Layout: I},
	{Name: "hlv.w", Mask: 0xfff0707f, Match: 0x68004073, Layout: I},
	{Name: "hlvx.wu", Mask: 0xfff0707f, Match: 0x68304073, Layout: I},
	{Name: "hsv.b", Mask: 0xfe007fff, Match: 0x62004073, Layout: RegPair},
	{Name: "hsv.h", Mask: 0xfe007fff, Match: 0x66004073, Layout: RegPair},
	{Name: "hsv.w", Mask: 0xfe007fff, Match: 0x6a004073, Layout: RegPair},
	{Name: "hfence.gvma", Mask: 0xfe007fff, Match: 0x62000073, Layout: RegPair},
	{Name: "hfence.vvma", Mask: 0xfe007fff, Match: 0x22000073, Layout: RegPair},
	{Name: "hlv.wu", Mask: 0xfff0707f, Match: 0x68104073, Layout: I},
	{Name: "hlv.d", Mask: 0xfff0707f, Match: 0x6c004073, Layout: I},
	{Name: "hsv.d", Mask: 0xfe007fff, Match: 0x6e004073, Layout: RegPair},
	{Name: "vle8.v", Mask: 0x1df0707f, Match: 0x00000007, Layout: I},
	{Name: "vle16.v", Mask: 0x1df0707f, Match: 0x00005007, Layout: I},
	{Name: "vle32.v", Mask: 0x1df0707f, Match: 0x00006007, Layout: I},
	{Name: "vle64.v", Mask: 0x1df0707f, Match: 0x00007007, Layout: I},
	{Name: "vse8.v", Mask: 0x1df0707f, Match: 0x00000027, Layout: I},
	{Name: "vse16.v", Mask: 0x1df0707f, Match: 0x00005027, Layout: I},
	{Name: "vse32.v", Mask: 0x1df0707f, Match: 0x00006027, Layout: I},
	{Name: "vse64.v", Mask: 0x1df0707f, Match: 0x00007027, Layout: I},
	{Name: "vlm.v", Mask: 0xfff0707f, Match: 0x02b00007, Layout: I},
	{Name: "vsm.v", Mask: 0xfff0707f, Match: 0x02b00027, Layout: I},
	{Name: "vlse8.v", Mask: 0x1c00707f, Match: 0x08000007, Layout: R},
	{Name: "vlse16.v", Mask: 0x1c00707f, Match: 0x08005007, Layout: R},
	{Name: "vlse32.v", Mask: 0x1c00707f, Match: 0x08006007, Layout: R},
	{Name: "vlse64.v", Mask: 0x1c00707f, Match: 0x08007007, Layout: R},
	{Name: "vsse8.v", Mask: 0x1c00707f, Match: 0x08000027, Layout: R},
	{Name: "vsse16.v", Mask: 0x1c00707f, Match: 0x08005027, Layout: R},
	{Name: "vsse32.v", Mask: 0x1c00707f, Match: 0x08006027, Layout: R},
	{Name: "vsse64.v", Mask: 0x1c00707f, Match: 0x08007027, Layout: R},
	{Name: "vlxei8.v", Mask: 0x1400707f, Match: 0x04000007, Layout: R},
	{Name: "vlxei16.v", Mask: 0x1400707f, Match: 0x04005007, Layout: R},
	{Name: "vlxei32.v", Mask: 0x1400707f, Match: 0x04006007, Layout: R},
	{Name: "vlxei64.v", Mask: 0x1400707f, Match: 0x04007007, Layout: R},
	{Name: "vsxei8.v", Mask: 0x1400707f, Match: 0x04000027, Layout: R},
	{Name: "vsxei16.v", Mask: 0x1400707f, Match: 0x04005027, Layout: R},
	{Name: "vsxei32.v", Mask: 0x1400707f, Match: 0x04006027, Layout: R},
	{Name: "vsxei64.v", Mask: 0x1400707f, Match: 0x04007027, Layout: R},
	{Name: "vle8ff.v", Mask: 0x1df0707f, Match: 0x01000007, Layout: I},
	{Name: "vle16ff.v", Mask: 0x1df0707f, Match: 0x01005007, Layout: I},
	{Name: "vle32ff.v", Mask: 0x1df0707f, Match: 0x01006007, Layout: I},
	{Name: "vle64ff.v", Mask: 0x1df0707f, Match: 0x01007007, Layout: I},
	{Name: "vl1re8.v", Mask: 0xfff0707f, Match: 0x02800007, Layout: I},
	{Name: "vl1re16.v", Mask: 0xfff0707f, Match: 0x02805007, Layout: I},
	{Name: "vl1re32.v", Mask: 0xfff0707f, Match: 0x02806007, Layout: I},
	{Name: "vl1re64.v", Mask: 0xfff0707f, Match: 0x02807007, Layout: I},
	{Name: "vl2re8.v", Mask: 0xfff0707f, Match: 0x22800007, Layout: I},
	{Name: "vl2re16.v", Mask: 0xfff0707f, Match: 0x22805007, Layout: I},
	{Name: "vl2re32.v", Mask: 0xfff0707f, Match: 0x22806007, Layout: I},
	{Name: "vl2re64.v", Mask: 0xfff0707f, Match: 0x22807007, Layout: I},
	{Name: "vl4re8.v", Mask: 0xfff0707f, Match: 0x62800007, Layout: I},
	{Name: "vl4re16.v", Mask: 0xfff0707f, Match: 0x62805007, Layout: I},
	{Name: "vl4re32.v", Mask: 0xfff0707f, Match: 0x62806007, Layout: I},
	{Name: "vl4re64.v", Mask: 0xfff0707f, Match: 0x62807007, Layout: I},
	{Name: "vl8re8.v", Mask: 0xfff0707f, Match: 0xe2800007, Layout: I},
	{Name: "vl8re16.v", Mask: 0xfff0707f, Match: 0xe2805007, Layout: I},
	{Name: "vl8re32.v", Mask: 0xfff0707f, Match: 0xe2806007, Layout: I},
	{Name: "vl8re64.v", Mask: 0xfff0707f, Match: 0xe2807007, Layout: I},
	{Name: "vs1r.v", Mask: 0xfff0707f, Match: 0x02800027, Layout: I},
	{Name: "vs2r.v", Mask: 0xfff0707f, Match: 0x22800027, Layout: I},
	{Name: "vs4r.v", Mask: 0xfff0707f, Match: 0x62800027, Layout: I},
	{Name: "vs8r.v", Mask: 0xfff0707f, Match: 0xe2800027, Layout: I},
	{Name: "vadd.vv", Mask: 0xfc00707f, Match: 0x00000057, Layout: R},
	{Name: "vadd.vx", Mask: 0xfc00707f, Match: 0x00004057, Layout: R},
	{Name: "vadd.vi", Mask: 0xfc00707f, Match: 0x00003057, Layout: R},
	{Name: "vsub.vv", Mask: 0xfc00707f, Match: 0x08000057, Layout: R},
	{Name: "vsub.vx", Mask: 0xfc00707f, Match: 0x08004057, Layout: R},
	{Name: "vrsub.vx", Mask: 0xfc00707f, Match: 0x0c004057, Layout: R},
	{Name: "vrsub.vi", Mask: 0xfc00707f, Match: 0x0c003057, Layout: R},
	{Name: "vwaddu.vv", Mask: 0xfc00707f, Match: 0xc0002057, Layout: R},
	{Name: "vwaddu.vx", Mask: 0xfc00707f, Match: 0xc0006057, Layout: R},
	{Name: "vwadd.vv", Mask: 0xfc00707f, Match: 0xc4002057, Layout: R},
	{Name: "vwadd.vx", Mask: 0xfc00707f, Match: 0xc4006057, Layout: R},
	{Name: "vwsubu.vv", Mask: 0xfc00707f, Match: 0xc8002057, Layout: R},
	{Name: "vwsubu.vx", Mask: 0xfc00707f, Match: 0xc8006057, Layout: R},
	{Name: "vwsub.vv", Mask: 0xfc00707f, Match: 0xcc002057, Layout: R},
	{Name: "vwsub.vx", Mask: 0xfc00707f, Match: 0xcc006057, Layout: R},
	{Name: "vwaddu.wv", Mask: 0xfc00707f, Match: 0xd0002057, Layout: R},
	{Name: "vwaddu.wx", Mask: 0xfc00707f, Match: 0xd0006057, Layout: R},
	{Name: "vwadd.wv", Mask: 0xfc00707f, Match: 0xd4002057, Layout: R},
	{Name: "vwadd.wx", Mask: 0xfc00707f, Match: 0xd4006057, Layout: R},
	{Name: "vwsubu.wv", Mask: 0xfc00707f, Match: 0xd8002057, Layout: R},
	{Name: "vwsubu.wx", Mask: 0xfc00707f, Match: 0xd8006057, Layout: R},
	{Name: "vwsub.wv", Mask: 0xfc00707f, Match: 0xdc002057, Layout: R},
	{Name: "vwsub.wx", Mask: 0xfc00707f, Match: 0xdc006057, Layout: R},
	{Name: "vadc.vvm", Mask: 0xfe00707f, Match: 0x40000057, Layout: R},
	{Name: "vadc.vxm", Mask: 0xfe00707f, Match: 0x40004057, Layout: R},
	{Name: "vadc.vim", Mask: 0xfe00707f, Match: 0x40003057, Layout: R},
	{Name: "vmadc.vvm", Mask: 0xfc00707f, Match: 0x44000057, Layout: R},
	{Name: "vmadc.vxm", Mask: 0xfc00707f, Match: 0x44004057, Layout: R},
	{Name: "vmadc.vim", Mask: 0xfc00707f, Match: 0x44003057, Layout: R},
	{Name: "vsbc.vvm", Mask: 0xfe00707f, Match: 0x48000057, Layout: R},
	{Name: "vsbc.vxm", Mask: 0xfe00707f, Match: 0x48004057, Layout: R},
	{Name: "vmsbc.vvm", Mask: 0xfc00707f, Match: 0x4c000057, Layout: R},
	{Name: "vmsbc.vxm", Mask: 0xfc00707f, Match: 0x4c004057, Layout: R},
	{Name: "vand.vv", Mask: 0xfc00707f, Match: 0x24000057, Layout: R},
	{Name: "vand.vx", Mask: 0xfc00707f, Match: 0x24004057, Layout: R},
	{Name: "vand.vi", Mask: 0xfc00707f, Match: 0x24003057, Layout: R},
	{Name: "vor.vv", Mask: 0xfc00707f, Match: 0x28000057, Layout: R},
	{Name: "vor.vx", Mask: 0xfc00707f, Match: 0x28004057, Layout: R},
	{Name: "vor.vi", Mask: 0xfc00707f, Match: 0x28003057, Layout: R},
	{Name: "vxor.vv", Mask: 0xfc00707f, Match: 0x2c000057, Layout: R},
	{Name: "vxor.vx", Mask: 0xfc00707f, Match: 0x2c004057, Layout: R},
	{Name: "vxor.vi", Mask: 0xfc00707f, Match: 0x2c003057, Layout: R},
	{Name: "vsll.vv", Mask: 0xfc00707f, Match: 0x94000057, Layout: R},
	{Name: "vsll.vx", Mask: 0xfc00707f, Match: 0x94004057, Layout: R},
	{Name: "vsll.vi", Mask: 0xfc00707f, Match: 0x94003057, Layout: R},
	{Name: "vsrl.vv", Mask: 0xfc00707f, Match: 0xa0000057, Layout: R},
	{Name: "vsrl.vx", Mask: 0xfc00707f, Match: 0xa0004057, Layout: R},
	{Name: "vsrl.vi", Mask: 0xfc00707f, Match: 0xa0003057, Layout: R},
	{Name: "vsra.vv", Mask: 0xfc00707f, Match: 0xa4000057, Layout: R},
	{Name: "vsra.vx", Mask: 0xfc00707f, Match: 0xa4004057, Layout: R},
	{Name: "vsra.vi", Mask: 0xfc00707f, Match: 0xa4003057, Layout: R},
	{Name: "vnsrl.wv", Mask: 0xfc00707f, Match: 0xb0000057, Layout: R},
	{Name: "vnsrl.wx", Mask: 0xfc00707f, Match: 0xb0004057, Layout: R},
	{Name: "vnsrl.wi", Mask: 0xfc00707f, Match: 0xb0003057, Layout: R},
	{Name: "vnsra.wv", Mask: 0xfc00707f, Match: 0xb4000057, Layout: R},
	{Name: "vnsra.wx", Mask: 0xfc00707f, Match: 0xb4004057, Layout: R},
	{Name: "vnsra.wi", Mask: 0xfc00707f, Match: 0xb4003057, Layout: R},
	{Name: "vmseq.vv", Mask: 0xfc00707f, Match: 0x60000057, Layout: R},
	{Name: "vmseq.vx", Mask: 0xfc00707f, Match: 0x60004057, Layout: R},
	{Name: "vmseq.vi", Mask: 0xfc00707f, Match: 0x60003057, Layout: R},
	{Name: "vmsne.vv", Mask: 0xfc00707f, Match: 0x64000057, Layout: R},
	{Name: "vmsne.vx", Mask: 0xfc00707f, Match: 0x64004057, Layout: R},
	{Name: "vmsne.vi", Mask: 0xfc00707f, Match: 0x64003057, Layout: R},
	{Name: "vmsltu.vv", Mask: 0xfc00707f, Match: 0x68000057, Layout: R},
	{Name: "vmsltu.vx", Mask: 0xfc00707f, Match: 0x68004057, Layout: R},
	{Name: "vmslt.vv", Mask: 0xfc00707f, Match: 0x6c000057, Layout: R},
	{Name: "vmslt.vx", Mask: 0xfc00707f, Match: 0x6c004057, Layout: R},
	{Name: "vmsleu.vv", Mask: 0xfc00707f, Match: 0x70000057, Layout: R},
	{Name: "vmsleu.vx", Mask: 0xfc00707f, Match: 0x70004057, Layout: R},
	{Name: "vmsleu.vi", Mask: 0xfc00707f, Match: 0x70003057, Layout: R},
	{Name: "vmsle.vv", Mask: 0xfc00707f, Match: 0x74000057, Layout: R},
	{Name: "vmsle.vx", Mask: 0xfc00707f, Match: 0x74004057, Layout: R},
	{Name: "vmsle.vi", Mask: 0xfc00707f, Match: 0x74003057, Layout: R},
	{Name: "vmsgtu.vx", Mask: 0xfc00707f, Match: 0x78004057, Layout: R},
	{Name: "vmsgtu.vi", Mask: 0xfc00707f, Match: 0x78003057, Layout: R},
	{Name: "vmsgt.vx", Mask: 0xfc00707f, Match: 0x7c004057, Layout: R},
	{Name: "vmsgt.vi", Mask: 0xfc00707f, Match: 0x7c003057, Layout: R},
	{Name: "vminu.vv", Mask: 0xfc00707f, Match: 0x10000057, Layout: R},
	{Name: "vminu.vx", Mask: 0xfc00707f, Match: 0x10004057, Layout: R},
	{Name: "vmin.vv", Mask: 0xfc00707f, Match: 0x14000057, Layout: R},
	{Name: "vmin.vx", Mask: 0xfc00707f, Match: 0x14004057, Layout: R},
	{Name: "vmaxu.vv", Mask: 0xfc00707f, Match: 0x18000057, Layout: R},
	{Name: "vmaxu.vx", Mask: 0xfc00707f, Match: 0x18004057, Layout: R},
	{Name: "vmax.vv", Mask: 0xfc00707f, Match: 0x1c000057, Layout: R},
	{Name: "vmax.vx", Mask: 0xfc00707f, Match: 0x1c004057, Layout: R},
	{Name: "vmul.vv", Mask: 0xfc00707f, Match: 0x94002057, Layout: R},
	{Name: "vmul.vx", Mask: 0xfc00707f, Match: 0x94006057, Layout: R},
	{Name: "vmulh.vv", Mask: 0xfc00707f, Match: 0x9c002057, Layout: R},
	{Name: "vmulh.vx", Mask: 0xfc00707f, Match: 0x9c006057, Layout: R},
	{Name: "vmulhu.vv", Mask: 0xfc00707f, Match: 0x90002057, Layout: R},
	{Name: "vmulhu.vx", Mask: 0xfc00707f, Match: 0x90006057, Layout: R},
	{Name: "vmulhsu.vv", Mask: 0xfc00707f, Match: 0x98002057, Layout: R},
	{Name: "vmulhsu.vx", Mask: 0xfc00707f, Match: 0x98006057, Layout: R},
	{Name: "vdivu.vv", Mask: 0xfc00707f, Match: 0x80002057, Layout: R},
	{Name: "vdivu.vx", Mask: 0xfc00707f, Match: 0x80006057, Layout: R},
	{Name: "vdiv.vv", Mask: 0xfc00707f, Match: 0x84002057, Layout: R},
	{Name: "vdiv.vx", Mask: 0xfc00707f, Match: 0x84006057, Layout: R},
	{Name: "vremu.vv", Mask: 0xfc00707f, Match: 0x88002057, Layout: R},
	{Name: "vremu.vx", Mask: 0xfc00707f, Match: 0x88006057, Layout: R},
	{Name: "vrem.vv", Mask: 0xfc00707f, Match: 0x8c002057, Layout: R},
	{Name: "vrem.vx", Mask: 0xfc00707f, Match: 0x8c006057, Layout: R},
	{Name: "vwmulu.vv", Mask: 0xfc00707f, Match: 0xe0002057, Layout: R},
	{Name: "vwmulu.vx", Mask: 0xfc00707f, Match: 0xe0006057, Layout: R},
	{Name: "vwmulsu.vv", Mask: 0xfc00707f, Match: 0xe8002057, Layout: R},
	{Name: "vwmulsu.vx", Mask: 0xfc00707f, Match: 0xe8006057, Layout: R},
	{Name: "vwmul.vv", Mask: 0xfc00707f, Match: 0xec002057, Layout: R},
	{Name: "vwmul.vx", Mask: 0xfc00707f, Match: 0xec006057, Layout: R},
	{Name: "vmacc.vv", Mask: 0xfc00707f, Match: 0xb4002057, Layout: R},
	{Name: "vmacc.vx", Mask: 0xfc00707f, Match: 0xb4006057, Layout: R},
	{Name: "vnmsac.vv", Mask: 0xfc00707f, Match: 0xbc002057, Layout: R},
	{Name: "vnmsac.vx", Mask: 0xfc00707f, Match: 0xbc006057, Layout: R},
	{Name: "vmadd.vv", Mask: 0xfc00707f, Match: 0xa4002057, Layout: R},
	{Name: "vmadd.vx", Mask: 0xfc00707f, Match: 0xa4006057, Layout: R},
	{Name: "vnmsub.vv", Mask: 0xfc00707f, Match: 0xac002057, Layout: R},
	{Name: "vnmsub.vx", Mask: 0xfc00707f, Match: 0xac006057, Layout: R},
	{Name: "vwmaccu.vv", Mask: 0xfc00707f, Match: 0xf0002057, Layout: R},
	{Name: "vwmaccu.vx", Mask: 0xfc00707f, Match: 0xf0006057, Layout: R},
	{Name: "vwmacc.vv", Mask: 0xfc00707f, Match: 0xf4002057, Layout: R},
	{Name: "vwmacc.vx", Mask: 0xfc00707f, Match: 0xf4006057, Layout: R},
	{Name: "vwmaccsu.vv", Mask: 0xfc00707f, Match: 0xfc002057, Layout: R},
	{Name: "vwmaccsu.vx", Mask: 0xfc00707f, Match: 0xfc006057, Layout: R},
	{Name: "vwmaccus.vx", Mask: 0xfc00707f, Match: 0xf8006057, Layout: R},
	{Name: "vmv.v.v", Mask: 0xfff0707f, Match: 0x5e000057, Layout: I},
	{Name: "vmv.v.x", Mask: 0xfff0707f, Match: 0x5e004057, Layout: I},
	{Name: "vmv.v.i", Mask: 0xfff0707f, Match: 0x5e003057, Layout: I},
	{Name: "vmerge.vvm", Mask: 0xfe00707f, Match: 0x5c000057, Layout: R},
	{Name: "vmerge.vxm", Mask: 0xfe00707f, Match: 0x5c004057, Layout: R},
	{Name: "vmerge.vim", Mask: 0xfe00707f, Match: 0x5c003057, Layout: R},
	{Name: "vsaddu.vv", Mask: 0xfc00707f, Match: 0x80000057, Layout: R},
	{Name: "vsaddu.vx", Mask: 0xfc00707f, Match: 0x80004057, Layout: R},
	{Name: "vsaddu.vi", Mask: 0xfc00707f, Match: 0x80003057, Layout: R},
	{Name: "vsadd.vv", Mask: 0xfc00707f, Match: 0x84000057, Layout: R},
	{Name: "vsadd.vx", Mask: 0xfc00707f, Match: 0x84004057, Layout: R},
	{Name: "vsadd.vi", Mask: 0xfc00707f, Match: 0x84003057, Layout: R},
	{Name: "vssubu.vv", Mask: 0xfc00707f, Match: 0x88000057, Layout: R},
	{Name: "vssubu.vx", Mask: 0xfc00707f, Match: 0x88004057, Layout: R},
	{Name: "vssub.vv", Mask: 0xfc00707f, Match: 0x8c000057, Layout: R},
	{Name: "vssub.vx", Mask: 0xfc00707f, Match: 0x8c004057, Layout: R},
	{Name: "vaadd.vv", Mask: 0xfc00707f, Match: 0x24002057, Layout: R},
	{Name: "vaadd.vx", Mask: 0xfc00707f, Match: 0x24006057, Layout: R},
	{Name: "vaaddu.vv", Mask: 0xfc00707f, Match: 0x20002057, Layout: R},
	{Name: "vaaddu.vx", Mask: 0xfc00707f, Match: 0x20006057, Layout: R},
	{Name: "vasub.vv", Mask: 0xfc00707f, Match: 0x2c002057, Layout: R},
	{Name: "vasub.vx", Mask: 0xfc00707f, Match: 0x2c006057, Layout: R},
	{Name: "vasubu.vv", Mask: 0xfc00707f, Match: 0x28002057, Layout: R},
	{Name: "vasubu.vx", Mask: 0xfc00707f, Match: 0x28006057, Layout: R},
	{Name: "vsmul.vv", Mask: 0xfc00707f, Match: 0x9c000057, Layout: R},
	{Name: "vsmul.vx", Mask: 0xfc00707f, Match: 0x9c004057, Layout: R},
	{Name: "vssrl.vv", Mask: 0xfc00707f, Match: 0xa8000057, Layout: R},
	{Name: "vssrl.vx", Mask: 0xfc00707f, Match: 0xa8004057, Layout: R},
	{Name: "vssrl.vi", Mask: 0xfc00707f, Match: 0xa8003057, Layout: R},
	{Name: "vssra.vv", Mask: 0xfc00707f, Match: 0xac000057, Layout: R},
	{Name: "vssra.vx", Mask: 0xfc00707f, Match: 0xac004057, Layout: R},
	{Name: "vssra.vi", Mask: 0xfc00707f, Match: 0xac003057, Layout: R},
	{Name: "vnclipu.wv", Mask: 0xfc00707f, Match: 0xb8000057, Layout: R},
	{Name: "vnclipu.wx", Mask: 0xfc00707f, Match: 0xb8004057, Layout: R},
	{Name: "vnclipu.wi", Mask: 0xfc00707f, Match: 0xb8003057, Layout: R},
	{Name: "vnclip.wv", Mask: 0xfc00707f, Match: 0xbc000057, Layout: R},
	{Name: "vnclip.wx", Mask: 0xfc00707f, Match: 0xbc004057, Layout: R},
	{Name: "vnclip.wi", Mask: 0xfc00707f, Match: 0xbc003057, Layout: R},
	{Name: "vfadd.vv", Mask: 0xfc00707f, Match: 0x00001057, Layout: R},
	{Name: "vfadd.vf", Mask: 0xfc00707f, Match: 0x00005057, Layout: R},
	{Name: "vfsub.vv", Mask: 0xfc00707f, Match: 0x08001057, Layout: R},
	{Name: "vfsub.vf", Mask: 0xfc00707f, Match: 0x08005057, Layout: R},
	{Name: "vfrsub.vf", Mask: 0xfc00707f, Match: 0x9c005057, Layout: R},
	{Name: "vfwadd.vv", Mask: 0xfc00707f, Match: 0xc0001057, Layout: R},
	{Name: "vfwadd.vf", Mask: 0xfc00707f, Match: 0xc0005057, Layout: R},
	{Name: "vfwadd.wv", Mask: 0xfc00707f, Match: 0xd0001057, Layout: R},
	{Name: "vfwadd.wf", Mask: 0xfc00707f, Match: 0xd0005057, Layout: R},
	{Name: "vfwsub.vv", Mask: 0xfc00707f, Match: 0xc8001057, Layout: R},
	{Name: "vfwsub.vf", Mask: 0xfc00707f, Match: 0xc8005057, Layout: R},
	{Name: "vfwsub.wv", Mask: 0xfc00707f, Match: 0xd8001057, Layout: R},
	{Name: "vfwsub.wf", Mask: 0xfc00707f, Match: 0xd8005057, Layout: R},
	{Name: "vfmul.vv", Mask: 0xfc00707f, Match: 0x90001057, Layout: R},
	{Name: "vfmul.vf", Mask: 0xfc00707f, Match: 0x90005057, Layout: R},
	{Name: "vfdiv.vv", Mask: 0xfc00707f, Match: 0x80001057, Layout: R},
	{Name: "vfdiv.vf", Mask: 0xfc00707f, Match: 0x80005057, Layout: R},
	{Name: "vfrdiv.vf", Mask: 0xfc00707f, Match: 0x84005057, Layout: R},
	{Name: "vfwmul.vv", Mask: 0xfc00707f, Match: 0xe0001057, Layout: R},
	{Name: "vfwmul.vf", Mask: 0xfc00707f, Match: 0xe0005057, Layout: R},
	{Name: "vfmacc.vv", Mask: 0xfc00707f, Match: 0xb0001057, Layout: R},
	{Name: "vfnmacc.vv", Mask: 0xfc00707f, Match: 0xb4001057, Layout: R},
	{Name: "vfnmacc.vf", Mask: 0xfc00707f, Match: 0xb4005057, Layout: R},
	{Name: "vfmacc.vf", Mask: 0xfc00707f, Match: 0xb0005057, Layout: R},
	{Name: "vfmsac.vv", Mask: 0xfc00707f, Match: 0xb8001057, Layout: R},
	{Name: "vfmsac.vf", Mask: 0xfc00707f, Match: 0xb8005057, Layout: R},
	{Name: "vfnmsac.vv", Mask: 0xfc00707f, Match: 0xbc001057, Layout: R},
	{Name: "vfnmsac.vf", Mask: 0xfc00707f, Match: 0xbc005057, Layout: R},
	{Name: "vfmadd.vv", Mask: 0xfc00707f, Match: 0xa0001057, Layout: R},
	{Name: "vfmadd.vf", Mask: 0xfc00707f, Match: 0xa0005057, Layout: R},
	{Name: "vfnmadd.vv", Mask: 0xfc00707f, Match: 0xa4001057, Layout: R},
	{Name: "vfnmadd.vf", Mask: 0xfc00707f, Match: 0xa4005057, Layout: R},
	{Name: "vfmsub.vv", Mask: 0xfc00707f, Match: 0xa8001057, Layout: R},
	{Name: "vfmsub.vf", Mask: 0xfc00707f, Match: 0xa8005057, Layout: R},
	{Name: "vfnmsub.vv", Mask: 0xfc00707f, Match: 0xac001057, Layout: R},
	{Name: "vfnmsub.vf", Mask: 0xfc00707f, Match: 0xac005057, Layout: R},
	{Name: "vfwmacc.vv", Mask: 0xfc00707f, Match: 0xf0001057, Layout: R},
	{Name: "vfwmacc.vf", Mask: 0xfc00707f, Match: 0xf0005057, Layout: R},
	{Name: "vfwnmacc.vv", Mask: 0xfc00707f, Match: 0xf4001057, Layout: R},
	{Name: "vfwnmacc.vf", Mask: 0xfc00707f, Match: 0xf4005057, Layout: R},
	{Name: "vfwmsac.vv", Mask: 0xfc00707f, Match: 0xf8001057, Layout: R},
	{Name: "vfwmsac.vf", Mask: 0xfc00707f, Match: 0xf8005057, Layout: R},
	{Name: "vfwnmsac.vv", Mask: 0xfc00707f, Match: 0xfc001057, Layout: R},
	{Name: "vfwnmsac.vf", Mask: 0xfc00707f, Match: 0xfc005057, Layout: R},
	{Name: "vfsqrt.v", Mask: 0xfc0ff07f, Match: 0x4c001057, Layout: I},
	{Name: "vfrsqrt7.v", Mask: 0xfc0ff07f, Match: 0x4c021057, Layout: I},
	{Name: "vfrec7.v", Mask: 0xfc0ff07f, Match: 0x4c029057, Layout: I},
	{Name: "vfmin.vv", Mask: 0xfc00707f, Match: 0x10001057, Layout: R},
	{Name: "vfmin.vf", Mask: 0xfc00707f, Match: 0x10005057, Layout: R},
	{Name: "vfmax.vv", Mask: 0xfc00707f, Match: 0x18001057, Layout: R},
	{Name: "vfmax.vf", Mask: 0xfc00707f, Match: 0x18005057, Layout: R},
	{Name: "vfsgnj.vv", Mask: 0xfc00707f, Match: 0x20001057, Layout: R},
	{Name: "vfsgnj.vf", Mask: 0xfc00707f, Match: 0x20005057, Layout: R},
	{Name: "vfsgnjn.vv", Mask: 0xfc00707f, Match: 0x24001057, Layout: R},
	{Name: "vfsgnjn.vf", Mask: 0xfc00707f, Match: 0x24005057, Layout: R},
	{Name: "vfsgnjx.vv", Mask: 0xfc00707f, Match: 0x28001057, Layout: R},
	{Name: "vfsgnjx.vf", Mask: 0xfc00707f, Match: 0x28005057, Layout: R},
	{Name: "vfslide1up.vf", Mask: 0xfc00707f, Match: 0x38005057, Layout: R},
	{Name: "vfslide1down.vf", Mask: 0xfc00707f, Match: 0x3c005057, Layout: R},
	{Name: "vmfeq.vv", Mask: 0xfc00707f, Match: 0x60001057, Layout: R},
	{Name: "vmfeq.vf", Mask: 0xfc00707f, Match: 0x60005057, Layout: R},
	{Name: "vmfne.vv", Mask: 0xfc00707f, Match: 0x70001057, Layout: R},
	{Name: "vmfne.vf", Mask: 0xfc00707f, Match: 0x70005057, Layout: R},
	{Name: "vmflt.vv", Mask: 0xfc00707f, Match: 0x6c001057, Layout: R},
	{Name: "vmflt.vf", Mask: 0xfc00707f, Match: 0x6c005057, Layout: R},
	{Name: "vmfle.vv", Mask: 0xfc00707f, Match: 0x64001057, Layout: R},
	{Name: "vmfle.vf", Mask: 0xfc00707f, Match: 0x64005057, Layout: R},
	{Name: "vmfgt.vf", Mask: 0xfc00707f, Match: 0x74005057, Layout: R},
	{Name: "vmfge.vf", Mask: 0xfc00707f, Match: 0x7c005057, Layout: R},
	{Name: "vfclass.v", Mask: 0xfc0ff07f, Match: 0x4c081057, Layout: I},
	{Name: "vfmerge.vfm", Mask: 0xfe00707f, Match: 0x5c005057, Layout: R},
	{Name: "vfmv.v.f", Mask: 0xfff0707f, Match: 0x5e005057, Layout: I},
	{Name: "vfcvt.xu.f.v", Mask: 0xfc0ff07f, Match: 0x48001057, Layout: I},
	{Name: "vfcvt.x.f.v", Mask: 0xfc0ff07f, Match: 0x48009057, Layout: I},
	{Name: "vfcvt.f.xu.v", Mask: 0xfc0ff07f, Match: 0x48011057, Layout: I},
	{Name: "vfcvt.f.x.v", Mask: 0xfc0ff07f, Match: 0x48019057, Layout: I},
	{Name: "vfcvt.rtz.xu.f.v", Mask: 0xfc0ff07f, Match: 0x48031057, Layout: I},
	{Name: "vfcvt.rtz.x.f.v", Mask: 0xfc0ff07f, Match: 0x48039057, Layout: I},
	{Name: "vfwcvt.xu.f.v", Mask: 0xfc0ff07f, Match: 0x48041057, Layout: I},
	{Name: "vfwcvt.x.f.v", Mask: 0xfc0ff07f, Match: 0x48049057, Layout: I},
	{Name: "vfwcvt.f.xu.v", Mask: 0xfc0ff07f, Match: 0x48051057, Layout: I},
	{Name: "vfwcvt.f.x.v", Mask: 0xfc0ff07f, Match: 0x48059057, Layout: I},
	{Name: "vfwcvt.f.f.v", Mask: 0xfc0ff07f, Match: 0x48061057, Layout: I},
	{Name: "vfwcvt.rtz.xu.f.v", Mask: 0xfc0ff07f, Match: 0x48071057, Layout: I},
	{Name: "vfwcvt.rtz.x.f.v", Mask: 0xfc0ff07f, Match: 0x48079057, Layout: I},
	{Name: "vfncvt.xu.f.w", Mask: 0xfc0ff07f, Match: 0x48081057, Layout: I},
	{Name: "vfncvt.x.f.w", Mask: 0xfc0ff07f, Match: 0x48089057, Layout: I},
	{Name: "vfncvt.f.xu.w", Mask: 0xfc0ff07f, Match: 0x48091057, Layout: I},
	{Name: "vfncvt.f.x.w", Mask: 0xfc0ff07f, Match: 0x48099057, Layout: I},
	{Name: "vfncvt.f.f.w", Mask: 0xfc0ff07f, Match: 0x480a1057, Layout: I},
	{Name: "vfncvt.rod.f.f.w", Mask: 0xfc0ff07f, Match: 0x480a9057, Layout: I},
	{Name: "vfncvt.rtz.xu.f.w", Mask: 0xfc0ff07f, Match: 0x480b1057, Layout: I},
	{Name: "vfncvt.rtz.x.f.w", Mask: 0xfc0ff07f, Match: 0x480b9057, Layout: I},
	{Name: "vredsum.vs", Mask: 0xfc00707f, Match: 0x00002057, Layout: R},
	{Name: "vredand.vs", Mask: 0xfc00707f, Match: 0x04002057, Layout: R},
	{Name: "vredor.vs", Mask: 0xfc00707f, Match: 0x08002057, Layout: R},
	{Name: "vredxor.vs", Mask: 0xfc00707f, Match: 0x0c002057, Layout: R},
	{Name: "vredminu.vs", Mask: 0xfc00707f, Match: 0x10002057, Layout: R},
	{Name: "vredmin.vs", Mask: 0xfc00707f, Match: 0x14002057, Layout: R},
	{Name: "vredmaxu.vs", Mask: 0xfc00707f, Match: 0x18002057, Layout: R},
	{Name: "vredmax.vs", Mask: 0xfc00707f, Match: 0x1c002057, Layout: R},
	{Name: "vwredsumu.vs", Mask: 0xfc00707f, Match: 0xc0000057, Layout: R},
	{Name: "vwredsum.vs", Mask: 0xfc00707f, Match: 0xc4000057, Layout: R},
	{Name: "vfredsum.vs", Mask: 0xf400707f, Match: 0x04001057, Layout: R},
	{Name: "vfredmin.vs", Mask: 0xfc00707f, Match: 0x14001057, Layout: R},
	{Name: "vfredmax.vs", Mask: 0xfc00707f, Match: 0x1c001057, Layout: R},
	{Name: "vfwredsum.vs", Mask: 0xf400707f, Match: 0xc4001057, Layout: R},
	{Name: "vmand.mm", Mask: 0xfc00707f, Match: 0x64002057, Layout: R},
	{Name: "vmnand.mm", Mask: 0xfc00707f, Match: 0x74002057, Layout: R},
	{Name: "vmandn.mm", Mask: 0xfc00707f, Match: 0x60002057, Layout: R},
	{Name: "vmxor.mm", Mask: 0xfc00707f, Match: 0x6c002057, Layout: R},
	{Name: "vmor.mm", Mask: 0xfc00707f, Match: 0x68002057, Layout: R},
	{Name: "vmnor.mm", Mask: 0xfc00707f, Match: 0x78002057, Layout: R},
	{Name: "vmorn.mm", Mask: 0xfc00707f, Match: 0x70002057, Layout: R},
	{Name: "vmxnor.mm", Mask: 0xfc00707f, Match: 0x7c002057, Layout: R},
	{Name: "vcpop.m", Mask: 0xfc0ff07f, Match: 0x40082057, Layout: I},
	{Name: "vfirst.m", Mask: 0xfc0ff07f, Match: 0x4008a057, Layout: I},
	{Name: "vmsbf.m", Mask: 0xfc0ff07f, Match: 0x5000a057, Layout: I},
	{Name: "vmsif.m", Mask: 0xfc0ff07f, Match: 0x5001a057, Layout: I},
	{Name: "vmsof.m", Mask: 0xfc0ff07f, Match: 0x50012057, Layout: I},
	{Name: "viota.m", Mask: 0xfc0ff07f, Match: 0x50082057, Layout: I},
	{Name: "vid.v", Mask: 0xfdfff07f, Match: 0x5008a057, Layout: I},
	{Name: "vmv.x.s", Mask: 0xfe0ff07f, Match: 0x42002057, Layout: I},
	{Name: "vmv.s.x", Mask: 0xfff0707f, Match: 0x42006057, Layout: I},
	{Name: "vfmv.f.s", Mask: 0xfe0ff07f, Match: 0x42001057, Layout: I},
	{Name: "vfmv.s.f", Mask: 0xfff0707f, Match: 0x42005057, Layout: I},
	{Name: "vslideup.vx", Mask: 0xfc00707f, Match: 0x38004057, Layout: R},
	{Name: "vslideup.vi", Mask: 0xfc00707f, Match: 0x38003057, Layout: R},
	{Name: "vslide1up.vx", Mask: 0xfc00707f, Match: 0x38006057, Layout: R},
	{Name: "vslidedown.vx", Mask: 0xfc00707f, Match: 0x3c004057, Layout: R},
	{Name: "vslidedown.vi", Mask: 0xfc00707f, Match: 0x3c003057, Layout: R},
	{Name: "vslide1down.vx", Mask: 0xfc00707f, Match: 0x3c006057, Layout: R},
	{Name: "vrgather.vv", Mask: 0xfc00707f, Match: 0x30000057, Layout: R},
	{Name: "vrgatherei16.vv", Mask: 0xfc00707f, Match: 0x38000057, Layout: R},
	{Name: "vrgather.vx", Mask: 0xfc00707f, Match: 0x30004057, Layout: R},
	{Name: "vrgather.vi", Mask: 0xfc00707f, Match: 0x30003057, Layout: R},
	{Name: "vcompress.vm", Mask: 0xfc00707f, Match: 0x5c002057, Layout: R},
	{Name: "vmv1r.v", Mask: 0xfe0ff07f, Match: 0x9e003057, Layout: I},
	{Name: "vmv2r.v", Mask: 0xfe0ff07f, Match: 0x9e00b057, Layout: I},
	{Name: "vmv4r.v", Mask: 0xfe0ff07f, Match: 0x9e01b057, Layout: I},
	{Name: "vmv8r.v", Mask: 0xfe0ff07f, Match: 0x9e03b057, Layout: I},
	{Name: "vzext.vf2", Mask: 0xfc0ff07f, Match: 0x48032057, Layout: I},
	{Name: "vzext.vf4", Mask: 0xfc0ff07f, Match: 0x48022057, Layout: I},
	{Name: "vzext.vf8", Mask: 0xfc0ff07f, Match: 0x48012057, Layout: I},
	{Name: "vsext.vf2", Mask: 0xfc0ff07f, Match: 0x4803a057, Layout: I},
	{Name: "vsext.vf4", Mask: 0xfc0ff07f, Match: 0x4802a057, Layout: I},
	{Name: "vsext.vf8", Mask: 0xfc0ff07f, Match: 0x4801a057, Layout: I},
	{Name: "vsetvli", Mask: 0x8000707f, Match: 0x00007057, Layout: I},
	{Name: "vsetivli", Mask: 0xc000707f, Match: 0xc0007057, Layout: I},
	{Name: "vsetvl", Mask: 0xfe00707f, Match: 0x80007057, Layout: R},
	{Name: "sh1add", Mask: 0xfe00707f, Match: 0x20002033, Layout: R},
	{Name: "sh2add", Mask: 0xfe00707f, Match: 0x20004033, Layout: R},
	{Name: "sh3add", Mask: 0xfe00707f, Match: 0x20006033, Layout: R},
	{Name: "add.uw", Mask: 0xfe00707f, Match: 0x0800003b, Layout: R},
	{Name: "sh1add.uw", Mask: 0xfe00707f, Match: 0x2000203b, Layout: R},
	{Name: "sh2add.uw", Mask: 0xfe00707f, Match: 0x2000403b, Layout: R},
	{Name: "sh3add.uw", Mask: 0xfe00707f, Match: 0x2000603b, Layout: R},
	{Name: "slli.uw", Mask: 0xf800707f, Match: 0x0800101b, Layout: Shift6},
	{Name: "andn", Mask: 0xfe00707f, Match: 0x40007033, Layout: R},
	{Name: "clz", Mask: 0xfff0707f, Match: 0x60001013, Layout: I},
	{Name: "cpop", Mask: 0xfff0707f, Match: 0x60201013, Layout: I},
	{Name: "ctz", Mask: 0xfff0707f, Match: 0x60101013, Layout: I},
	{Name: "max", Mask: 0xfe00707f, Match: 0x0a006033, Layout: R},
	{Name: "maxu", Mask: 0xfe00707f, Match: 0x0a007033, Layout: R},
	{Name: "min", Mask: 0xfe00707f, Match: 0x0a004033, Layout: R},
	{Name: "minu", Mask: 0xfe00707f, Match: 0x0a005033, Layout: R},
	{Name: "orc.b", Mask: 0xfff0707f, Match: 0x28705013, Layout: I},
	{Name: "orn", Mask: 0xfe00707f, Match: 0x40006033, Layout: R},
	{Name: "rev8.32", Mask: 0xfff0707f, Match: 0x69805013, Layout: I},
	{Name: "rol", Mask: 0xfe00707f, Match: 0x60001033, Layout: R},
	{Name: "ror", Mask: 0xfe00707f, Match: 0x60005033, Layout: R},
	{Name: "rori", Mask: 0xf800707f, Match: 0x60005013, Layout: Shift6},
	{Name: "sext.b", Mask: 0xfff0707f, Match: 0x60401013, Layout: I},
	{Name: "sext.h", Mask: 0xfff0707f, Match: 0x60501013, Layout: I},
	{Name: "xnor", Mask: 0xfe00707f, Match: 0x40004033, Layout: R},
	{Name: "zext.h.32", Mask: 0xfff0707f, Match: 0x08004033, Layout: I},
	{Name: "clzw", Mask: 0xfff0707f, Match: 0x6000101b, Layout: I},
	{Name: "ctzw", Mask: 0xfff0707f, Match: 0x6010101b, Layout: I},
	{Name: "cpopw", Mask: 0xfff0707f, Match: 0x6020101b, Layout: I},
	{Name: "rev8.64", Mask: 0xfff0707f, Match: 0x6b805013, Layout: I},
	{Name: "rolw", Mask: 0xfe00707f, Match: 0x6000103b, Layout: R},
	{Name: "roriw", Mask: 0xfe00707f, Match: 0x6000501b, Layout: Shift5},
	{Name: "rorw", Mask: 0xfe00707f, Match: 0x6000503b, Layout: R},
	{Name: "zext.h.64", Mask: 0xfff0707f, Match: 0x0800403b, Layout: I},
	{Name: "clmul", Mask: 0xfe00707f, Match: 0x0a001033, Layout: R},
	{Name: "clmulh", Mask: 0xfe00707f, Match: 0x0a003033, Layout: R},
	{Name: "clmulr", Mask: 0xfe00707f, Match: 0x0a002033, Layout: R},
	{Name: "bclr", Mask: 0xfe00707f, Match: 0x48001033, Layout: R},
	{Name: "bclri", Mask: 0xf800707f, Match: 0x48001013, Layout: Shift6},
	{Name: "bext", Mask: 0xfe00707f, Match: 0x48005033, Layout: R},
	{Name: "bexti", Mask: 0xf800707f, Match: 0x48005013, Layout: Shift6},
	{Name: "binv", Mask: 0xfe00707f, Match: 0x68001033, Layout: R},
	{Name: "binvi", Mask: 0xf800707f, Match: 0x68001013, Layout: Shift6},
	{Name: "bset", Mask: 0xfe00707f, Match: 0x28001033, Layout: R},
	{Name: "bseti", Mask: 0xf800707f, Match: 0x28001013, Layout: Shift6},
	{Name: "flh", Mask: 0x0000707f, Match: 0x00001007, Layout: Load},
	{Name: "fsh", Mask: 0x0000707f, Match: 0x00001027, Layout: Store},
	{Name: "fmadd.h", Mask: 0x0600007f, Match: 0x04000043, Layout: R},
	{Name: "fmsub.h", Mask: 0x0600007f, Match: 0x04000047, Layout: R},
	{Name: "fnmsub.h", Mask: 0x0600007f, Match: 0x0400004b, Layout: R},
	{Name: "fnmadd.h", Mask: 0x0600007f, Match: 0x0400004f, Layout: R},
	{Name: "fadd.h", Mask: 0xfe00007f, Match: 0x04000053, Layout: R},
	{Name: "fsub.h", Mask: 0xfe00007f, Match: 0x0c000053, Layout: R},
	{Name: "fmul.h", Mask: 0xfe00007f, Match: 0x14000053, Layout: R},
	{Name: "fdiv.h", Mask: 0xfe00007f, Match: 0x1c000053, Layout: R},
	{Name: "fsqrt.h", Mask: 0xfff0007f, Match: 0x5c000053, Layout: I},
	{Name: "fsgnj.h", Mask: 0xfe00707f, Match: 0x24000053, Layout: R},
	{Name: "fsgnjn.h", Mask: 0xfe00707f, Match: 0x24001053, Layout: R},
	{Name: "fsgnjx.h", Mask: 0xfe00707f, Match: 0x24002053, Layout: R},
	{Name: "fmin.h", Mask: 0xfe00707f, Match: 0x2c000053, Layout: R},
	{Name: "fmax.h", Mask: 0xfe00707f, Match: 0x2c001053, Layout: R},
	{Name: "fcvt.h.s", Mask: 0xfff0007f, Match: 0x44000053, Layout: I},
	{Name: "fcvt.s.h", Mask: 0xfff0007f, Match: 0x40200053, Layout: I},
	{Name: "fcvt.h.d", Mask: 0xfff0007f, Match: 0x44100053, Layout: I},
	{Name: "fcvt.d.h", Mask: 0xfff0007f, Match: 0x42200053, Layout: I},
	{Name: "fcvt.w.h", Mask: 0xfff0007f, Match: 0xc4000053, Layout: I},
	{Name: "fcvt.wu.h", Mask: 0xfff0007f, Match: 0xc4100053, Layout: I},
	{Name: "fmv.x.h", Mask: 0xfff0707f, Match: 0xe4000053, Layout: I},
	{Name: "feq.h", Mask: 0xfe00707f, Match: 0xa4002053, Layout: R},
	{Name: "flt.h", Mask: 0xfe00707f, Match: 0xa4001053, Layout: R},
	{Name: "fle.h", Mask: 0xfe00707f, Match: 0xa4000053, Layout: R},
	{Name: "fclass.h", Mask: 0xfff0707f, Match: 0xe4001053, Layout: I},
	{Name: "fcvt.h.w", Mask: 0xfff0007f, Match: 0xd4000053, Layout: I},
	{Name: "fcvt.h.wu", Mask: 0xfff0007f, Match: 0xd4100053, Layout: I},
	{Name: "fmv.h.x", Mask: 0xfff0707f, Match: 0xf4000053, Layout: I},
	{Name: "fcvt.l.h", Mask: 0xfff0007f, Match: 0xc4200053, Layout: I},
	{Name: "fcvt.lu.h", Mask: 0xfff0007f, Match: 0xc4300053, Layout: I},
	{Name: "fcvt.h.l", Mask: 0xfff0007f, Match: 0xd4200053, Layout: I},
	{Name: "fcvt.h.lu", Mask: 0xfff0007f, Match: 0xd4300053, Layout: I},
}

// rvc lists the 16-bit compressed encodings. Masks only cover the low
// halfword and every match has low bits != 0b11, so these never collide
// with rv64. Within the group, narrower encodings precede the general
// form they overlap (c.nop/c.addi, c.srli64/c.srli, c.jr/c.mv, ...).
var rvc = []Pattern{
	{Name: "c.addi4spn", Mask: 0x0000e003, Match: 0x00000000, Layout: CWide},
	{Name: "c.fld", Mask: 0x0000e003, Match: 0x00002000, Layout: CLoad},
	{Name: "c.lw", Mask: 0x0000e003, Match: 0x00004000, Layout: CLoad},
	{Name: "c.ld", Mask: 0x0000e003, Match: 0x00006000, Layout: CLoad},
	{Name: "c.fsd", Mask: 0x0000e003, Match: 0x0000a000, Layout: CStore},
	{Name: "c.sw", Mask: 0x0000e003, Match: 0x0000c000, Layout: CStore},
	{Name: "c.sd", Mask: 0x0000e003, Match: 0x0000e000, Layout: CStore},
	{Name: "c.nop", Mask: 0x0000ef83, Match: 0x00000001, Layout: None},
	{Name: "c.addi", Mask: 0x0000e003, Match: 0x00000001, Layout: CImm},
	{Name: "c.addiw", Mask: 0x0000e003, Match: 0x00002001, Layout: CImm},
	{Name: "c.li", Mask: 0x0000e003, Match: 0x00004001, Layout: CImm},
	{Name: "c.addi16sp", Mask: 0x0000ef83, Match: 0x00006101, Layout: CImm},
	{Name: "c.lui", Mask: 0x0000e003, Match: 0x00006001, Layout: CImm},
	{Name: "c.srli64", Mask: 0x0000fc7f, Match: 0x00008001, Layout: CShift64R3},
	{Name: "c.srai64", Mask: 0x0000fc7f, Match: 0x00008401, Layout: CShift64R3},
	{Name: "c.srli", Mask: 0x0000ec03, Match: 0x00008001, Layout: CShiftR3},
	{Name: "c.srai", Mask: 0x0000ec03, Match: 0x00008401, Layout: CShiftR3},
	{Name: "c.andi", Mask: 0x0000ec03, Match: 0x00008801, Layout: CAndi},
	{Name: "c.sub", Mask: 0x0000fc63, Match: 0x00008c01, Layout: CArith},
	{Name: "c.xor", Mask: 0x0000fc63, Match: 0x00008c21, Layout: CArith},
	{Name: "c.or", Mask: 0x0000fc63, Match: 0x00008c41, Layout: CArith},
	{Name: "c.and", Mask: 0x0000fc63, Match: 0x00008c61, Layout: CArith},
	{Name: "c.subw", Mask: 0x0000fc63, Match: 0x00009c01, Layout: CArith},
	{Name: "c.addw", Mask: 0x0000fc63, Match: 0x00009c21, Layout: CArith},
	{Name: "c.j", Mask: 0x0000e003, Match: 0x0000a001, Layout: None},
	{Name: "c.beqz", Mask: 0x0000e003, Match: 0x0000c001, Layout: CBranch},
	{Name: "c.bnez", Mask: 0x0000e003, Match: 0x0000e001, Layout: CBranch},
	{Name: "c.slli64", Mask: 0x0000f07f, Match: 0x00000002, Layout: CShift64R5},
	{Name: "c.slli", Mask: 0x0000e003, Match: 0x00000002, Layout: CShiftR5},
	{Name: "c.fldsp", Mask: 0x0000e003, Match: 0x00002002, Layout: CLoadSP},
	{Name: "c.lwsp", Mask: 0x0000e003, Match: 0x00004002, Layout: CLoadSP},
	{Name: "c.ldsp", Mask: 0x0000e003, Match: 0x00006002, Layout: CLoadSP},
	{Name: "c.jr", Mask: 0x0000f07f, Match: 0x00008002, Layout: CJr},
	{Name: "c.mv", Mask: 0x0000f003, Match: 0x00008002, Layout: CMove},
	{Name: "c.ebreak", Mask: 0x0000ffff, Match: 0x00009002, Layout: None},
	{Name: "c.jalr", Mask: 0x0000f07f, Match: 0x00009002, Layout: CJalr},
	{Name: "c.add", Mask: 0x0000f003, Match: 0x00009002, Layout: CAdd},
	{Name: "c.fsdsp", Mask: 0x0000e003, Match: 0x0000a002, Layout: CStoreSP},
	{Name: "c.swsp", Mask: 0x0000e003, Match: 0x0000c002, Layout: CStoreSP},
	{Name: "c.sdsp", Mask: 0x0000e003, Match: 0x0000e002, Layout: CStoreSP},
}
