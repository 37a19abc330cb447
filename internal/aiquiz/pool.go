package aiquiz

// Pools estáticos usados quando o modelo está indisponível ou devolve
// saída inválida. Cada registro já nasce no formato exigido por Validate.

var basicPool = []Question{
	{
		Text:         "Qual é o valor de sizeof(char) em C?",
		Options:      []string{"Sempre 1", "Depende do compilador", "Sempre 2", "Sempre 4"},
		CorrectIndex: 0,
		Explanation:  "A norma define sizeof(char) como exatamente 1, independentemente da plataforma.",
	},
	{
		Text:         "Qual especificador do printf imprime um int decimal?",
		Options:      []string{"%f", "%d", "%s", "%c"},
		CorrectIndex: 1,
		Explanation:  "%d formata um int em notação decimal com sinal.",
	},
	{
		Text:         "Como se declara um ponteiro para int?",
		Options:      []string{"int p;", "ptr int p;", "int *p;", "int &p;"},
		CorrectIndex: 2,
		Explanation:  "O asterisco na declaração indica que p armazena o endereço de um int.",
	},
	{
		Text:         "Qual é o índice do primeiro elemento de um array em C?",
		Options:      []string{"1", "-1", "Depende da declaração", "0"},
		CorrectIndex: 3,
		Explanation:  "Arrays em C são sempre indexados a partir de 0.",
	},
	{
		Text:         "O que encerra uma string em C?",
		Options:      []string{"O caractere '\\0'", "O caractere '\\n'", "Um espaço em branco", "O tamanho declarado do array"},
		CorrectIndex: 0,
		Explanation:  "Strings em C são sequências de caracteres terminadas pelo byte nulo '\\0'.",
	},
	{
		Text:         "Qual operador compara igualdade entre dois valores?",
		Options:      []string{"=", "==", ":=", "equals"},
		CorrectIndex: 1,
		Explanation:  "= é atribuição; a comparação de igualdade usa ==.",
	},
	{
		Text:         "Para que serve a diretiva #include?",
		Options:      []string{"Declarar variáveis globais", "Definir uma macro", "Inserir o conteúdo de outro arquivo no ponto da diretiva", "Ligar bibliotecas em tempo de execução"},
		CorrectIndex: 2,
		Explanation:  "O pré-processador substitui a diretiva pelo conteúdo textual do arquivo incluído.",
	},
	{
		Text:         "Qual é o tipo de retorno convencional da função main?",
		Options:      []string{"void", "char", "float", "int"},
		CorrectIndex: 3,
		Explanation:  "main retorna int; o valor é o código de saída do programa.",
	},
	{
		Text:         "Qual palavra-chave impede que uma variável seja modificada?",
		Options:      []string{"const", "static", "final", "immutable"},
		CorrectIndex: 0,
		Explanation:  "const qualifica o objeto como somente leitura; final e immutable não existem em C.",
	},
	{
		Text:         "O que faz o operador & aplicado a uma variável, como em &x?",
		Options:      []string{"Calcula o E lógico de x", "Devolve o endereço de x na memória", "Duplica o valor de x", "Converte x para unsigned"},
		CorrectIndex: 1,
		Explanation:  "Em posição unária, & é o operador de endereço.",
	},
}

var moderatePool = []Question{
	{
		Text:         "Se p é um int* e sizeof(int) == 4, o que p + 1 representa?",
		Options:      []string{"O endereço de p mais 1 byte", "O endereço de p mais 4 bytes", "O valor apontado mais 1", "Comportamento indefinido sempre"},
		CorrectIndex: 1,
		Explanation:  "Aritmética de ponteiros avança em unidades do tipo apontado, aqui 4 bytes.",
	},
	{
		Text:         "O que acontece se free for chamado duas vezes no mesmo ponteiro não nulo?",
		Options:      []string{"A segunda chamada é ignorada", "O programa sempre aborta com mensagem clara", "Comportamento indefinido", "A memória é liberada em dobro"},
		CorrectIndex: 2,
		Explanation:  "Double free é comportamento indefinido; nada garante diagnóstico em tempo de execução.",
	},
	{
		Text:         "O que significa static em uma variável local de função?",
		Options:      []string{"Ela vive durante toda a execução do programa, preservando o valor entre chamadas", "Ela é alocada na pilha a cada chamada", "Ela se torna visível em outros arquivos", "Ela é armazenada em registrador"},
		CorrectIndex: 0,
		Explanation:  "static dá duração de armazenamento estática à variável local, sem alterar seu escopo.",
	},
	{
		Text:         "O que strcmp(\"abc\", \"abd\") retorna?",
		Options:      []string{"1, pois as strings diferem", "0, pois têm o mesmo tamanho", "Um valor negativo", "Comportamento indefinido"},
		CorrectIndex: 2,
		Explanation:  "strcmp devolve valor negativo quando a primeira string é lexicograficamente menor ('c' < 'd').",
	},
	{
		Text:         "Como argumentos são passados para funções em C?",
		Options:      []string{"Sempre por referência", "Por valor; arrays decaem para ponteiro", "Por referência apenas para structs", "Depende do qualificador register"},
		CorrectIndex: 1,
		Explanation:  "C passa cópias dos argumentos; um array usado como argumento decai para ponteiro ao primeiro elemento.",
	},
	{
		Text:         "O que ocorre ao modificar um literal de string, como em char *s = \"oi\"; s[0] = 'a';?",
		Options:      []string{"A string é alterada normalmente", "Erro de compilação obrigatório", "A alteração cria uma cópia local", "Comportamento indefinido"},
		CorrectIndex: 3,
		Explanation:  "Literais de string podem residir em memória somente leitura; modificá-los é comportamento indefinido.",
	},
	{
		Text:         "Qual é a diferença entre while e do-while?",
		Options:      []string{"do-while executa o corpo ao menos uma vez", "while é mais rápido", "do-while não aceita break", "Não há diferença semântica"},
		CorrectIndex: 0,
		Explanation:  "No do-while a condição é avaliada após o corpo, garantindo uma primeira iteração.",
	},
	{
		Text:         "Qual é o resultado de 12 & 10 (operador E bit a bit)?",
		Options:      []string{"22", "8", "14", "2"},
		CorrectIndex: 1,
		Explanation:  "1100 & 1010 = 1000 em binário, ou seja, 8.",
	},
	{
		Text:         "Para que servem as guardas de inclusão (#ifndef/#define/#endif) em um header?",
		Options:      []string{"Acelerar o linker", "Evitar que o conteúdo do header seja processado mais de uma vez por unidade de tradução", "Esconder símbolos privados", "Habilitar otimizações do compilador"},
		CorrectIndex: 1,
		Explanation:  "As guardas impedem redefinições quando o mesmo header é incluído múltiplas vezes.",
	},
	{
		Text:         "O que malloc(0) pode retornar segundo a norma?",
		Options:      []string{"Sempre NULL", "Sempre um ponteiro válido para 0 bytes", "NULL ou um ponteiro único que pode ser passado a free", "Um ponteiro para o heap inteiro"},
		CorrectIndex: 2,
		Explanation:  "Ambos os comportamentos são permitidos; o ponteiro retornado, se não nulo, não pode ser desreferenciado.",
	},
}

var harderPool = []Question{
	{
		Text:         "O que a expressão i = i++ + 1; produz em C?",
		Options:      []string{"i incrementado em 2", "i incrementado em 1", "Comportamento indefinido", "Erro de compilação"},
		CorrectIndex: 2,
		Explanation:  "Há duas modificações de i sem ponto de sequência entre elas, o que é comportamento indefinido.",
	},
	{
		Text:         "O que é um dangling pointer?",
		Options:      []string{"Um ponteiro nunca inicializado", "Um ponteiro para memória já liberada ou fora de escopo", "Um ponteiro nulo", "Um ponteiro para função"},
		CorrectIndex: 1,
		Explanation:  "Após free ou fim do escopo do objeto, o ponteiro continua com o endereço antigo, agora inválido.",
	},
	{
		Text:         "O que o qualificador restrict comunica ao compilador?",
		Options:      []string{"O ponteiro não pode ser modificado", "O objeto apontado é volátil", "O ponteiro aponta para memória alinhada", "Durante a vida do ponteiro, o objeto só é acessado através dele"},
		CorrectIndex: 3,
		Explanation:  "restrict é uma promessa de ausência de aliasing, que habilita otimizações.",
	},
	{
		Text:         "Quando volatile é necessário?",
		Options:      []string{"Quando o objeto pode mudar fora do fluxo normal do programa, como registradores de hardware", "Para variáveis compartilhadas entre funções", "Para impedir estouro de inteiro", "Para forçar alocação na pilha"},
		CorrectIndex: 0,
		Explanation:  "volatile impede que o compilador elimine ou reordene acessos ao objeto.",
	},
	{
		Text:         "Em if (-1 < 1U), qual é o resultado e por quê?",
		Options:      []string{"Verdadeiro, pois -1 é menor que 1", "Falso, pois -1 é convertido para um unsigned gigante", "Erro de compilação", "Comportamento indefinido"},
		CorrectIndex: 1,
		Explanation:  "Nas conversões aritméticas usuais, -1 vira UINT_MAX, que não é menor que 1U.",
	},
	{
		Text:         "O que declara int (*f)(int, int); ?",
		Options:      []string{"Uma função que retorna ponteiro para int", "Um array de funções", "Um ponteiro para função que recebe dois int e retorna int", "Uma função aninhada"},
		CorrectIndex: 2,
		Explanation:  "Os parênteses em (*f) fazem de f um ponteiro para função, não uma função que retorna ponteiro.",
	},
	{
		Text:         "O que é um flexible array member?",
		Options:      []string{"Um array global redimensionável", "Um array sem tamanho como último membro de uma struct, dimensionado na alocação", "Um array alocado com alloca", "Um VLA declarado em parâmetro"},
		CorrectIndex: 1,
		Explanation:  "O membro final sem tamanho permite alocar a struct com malloc(sizeof(struct) + n).",
	},
	{
		Text:         "Se realloc falha, o que acontece com o bloco original?",
		Options:      []string{"Permanece válido e inalterado", "É liberado automaticamente", "Fica em estado indeterminado", "É truncado para o novo tamanho"},
		CorrectIndex: 0,
		Explanation:  "realloc devolve NULL na falha e não toca no bloco original, que ainda precisa de free.",
	},
	{
		Text:         "Ler de um membro de union diferente do último escrito é, em C (C99 em diante):",
		Options:      []string{"Sempre comportamento indefinido", "Proibido pelo compilador", "Permitido; os bytes são reinterpretados no novo tipo", "Válido apenas para tipos de mesmo tamanho"},
		CorrectIndex: 2,
		Explanation:  "Type punning via union é permitido; o valor resulta da reinterpretação da representação de bytes.",
	},
	{
		Text:         "O que acontece com variáveis locais não-volatile modificadas entre setjmp e longjmp?",
		Options:      []string{"Mantêm sempre o valor mais recente", "Voltam ao valor do momento do setjmp", "Seus valores ficam indeterminados", "longjmp as zera"},
		CorrectIndex: 2,
		Explanation:  "A norma deixa indeterminados os valores de locais não-volatile alteradas após o setjmp.",
	},
}

// Pool devolve uma cópia profunda da lista da dificuldade pedida.
// Dificuldade desconhecida cai na lista básica em vez de falhar; a
// validação estrita de dificuldade acontece na criação da sessão.
func Pool(d Difficulty) []Question {
	var src []Question
	switch d {
	case DifficultyModerate:
		src = moderatePool
	case DifficultyHarder:
		src = harderPool
	default:
		src = basicPool
	}

	out := make([]Question, len(src))
	copy(out, src)
	for i := range out {
		out[i].Options = append([]string(nil), src[i].Options...)
	}
	return out
}
